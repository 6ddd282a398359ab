package result_test

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/validation/pkg/result"
)

func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
	}()
	fn()
	return nil
}

func TestSuccessAndError(t *testing.T) {
	t.Run("success exposes its value", func(t *testing.T) {
		r := result.Success[string](42)
		assert.True(t, r.IsSuccess())
		assert.False(t, r.IsError())
		assert.Equal(t, 42, r.Value())

		v, ok := r.Get()
		assert.True(t, ok)
		assert.Equal(t, 42, v)

		_, ok = r.GetErr()
		assert.False(t, ok)
	})

	t.Run("error exposes its payload", func(t *testing.T) {
		r := result.Error[string, int]("Invalid value")
		assert.True(t, r.IsError())
		assert.False(t, r.IsSuccess())
		assert.Equal(t, "Invalid value", r.Err())

		e, ok := r.GetErr()
		assert.True(t, ok)
		assert.Equal(t, "Invalid value", e)

		v, ok := r.Get()
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("zero value is an error", func(t *testing.T) {
		var r result.Result[string, int]
		assert.True(t, r.IsError())
		assert.Equal(t, "", r.Err())
	})
}

func TestInvalidStateAccess(t *testing.T) {
	t.Run("value on error panics", func(t *testing.T) {
		err := recoverError(t, func() {
			_ = result.Error[string, int]("boom").Value()
		})
		assert.True(t, errors.Is(err, result.ErrInvalidStateAccess))
		assert.True(t, errors.HasAssertionFailure(err))
	})

	t.Run("err on success panics", func(t *testing.T) {
		err := recoverError(t, func() {
			_ = result.Success[string](1).Err()
		})
		assert.True(t, errors.Is(err, result.ErrInvalidStateAccess))
	})
}

func TestOf(t *testing.T) {
	ok := result.Of(strconv.Atoi("12"))
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 12, ok.Value())

	bad := result.Of(strconv.Atoi("x"))
	require.True(t, bad.IsError())
	assert.ErrorIs(t, bad.Err(), strconv.ErrSyntax)
}

func TestMap(t *testing.T) {
	inc := func(i int) int { return i + 1 }

	for _, x := range []int{-1, 0, 2, 1000} {
		assert.Equal(t, inc(x), result.Map(result.Success[string](x), inc).Value())
	}

	t.Run("error is propagated without calling fn", func(t *testing.T) {
		called := false
		r := result.Map(result.Error[string, int]("e"), func(i int) string {
			called = true
			return strconv.Itoa(i)
		})
		assert.False(t, called)
		assert.Equal(t, "e", r.Err())
	})
}

func TestFlatMap(t *testing.T) {
	half := func(i int) result.Result[string, int] {
		if i%2 != 0 {
			return result.Error[string, int]("odd")
		}
		return result.Success[string](i / 2)
	}

	tests := []struct {
		name string
		in   result.Result[string, int]
		want result.Result[string, int]
	}{
		{"success into success", result.Success[string](4), result.Success[string](2)},
		{"success into error", result.Success[string](3), result.Error[string, int]("odd")},
		{"error short circuits", result.Error[string, int]("first"), result.Error[string, int]("first")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, result.FlatMap(tt.in, half))
		})
	}
}

func TestMapError(t *testing.T) {
	r := result.MapError(result.Error[string, int]("bad"), func(e string) []string { return []string{e} })
	assert.Equal(t, []string{"bad"}, r.Err())

	s := result.MapError(result.Success[string](1), func(e string) []string { return []string{e} })
	assert.Equal(t, 1, s.Value())
}

func TestFilter(t *testing.T) {
	gt5 := func(i int) bool { return i > 5 }
	errFn := func() string { return "Invalid value" }

	assert.Equal(t, result.Success[string](6), result.Success[string](6).Filter(gt5, errFn))
	assert.Equal(t, result.Error[string, int]("Invalid value"), result.Success[string](5).Filter(gt5, errFn))

	t.Run("error is untouched", func(t *testing.T) {
		called := false
		r := result.Error[string, int]("e").Filter(func(int) bool {
			called = true
			return true
		}, errFn)
		assert.False(t, called)
		assert.Equal(t, result.Error[string, int]("e"), r)
	})
}

func TestCompose(t *testing.T) {
	sum := func(a, b int) int { return a + b }

	tests := []struct {
		name string
		a, b result.Result[string, int]
		want result.Result[string, int]
	}{
		{"both success", result.Success[string](2), result.Success[string](3), result.Success[string](5)},
		{"success then error", result.Success[string](2), result.Error[string, int]("Invalid value"), result.Error[string, int]("Invalid value")},
		{"error then success", result.Error[string, int]("left"), result.Success[string](3), result.Error[string, int]("left")},
		{"both errors keep the left one", result.Error[string, int]("left"), result.Error[string, int]("right"), result.Error[string, int]("left")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compose(tt.b, sum))
		})
	}

	t.Run("combine is not called when either side fails", func(t *testing.T) {
		called := false
		_ = result.Success[string](1).Compose(result.Error[string, int]("x"), func(a, b int) int {
			called = true
			return a + b
		})
		assert.False(t, called)
	})
}

func TestOrElse(t *testing.T) {
	fallback := result.Success[string](7)

	assert.Equal(t, 1, result.Success[string](1).OrElse(fallback).Value())
	assert.Equal(t, 7, result.Error[string, int]("e").OrElse(fallback).Value())

	t.Run("supplier only runs on error", func(t *testing.T) {
		calls := 0
		supplier := func() result.Result[string, int] {
			calls++
			return fallback
		}
		_ = result.Success[string](1).OrElseGet(supplier)
		assert.Equal(t, 0, calls)
		_ = result.Error[string, int]("e").OrElseGet(supplier)
		assert.Equal(t, 1, calls)
	})
}

func TestToOptional(t *testing.T) {
	t.Run("error is absent", func(t *testing.T) {
		assert.False(t, result.Error[string, int]("e").ToOptional().IsPresent())
	})

	t.Run("zero values stay present", func(t *testing.T) {
		o := result.Success[string]("").ToOptional()
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, "", v)
		assert.True(t, result.Success[string](0).ToOptional().IsPresent())
	})

	t.Run("nil pointer is absent", func(t *testing.T) {
		var p *int
		assert.False(t, result.Success[string](p).ToOptional().IsPresent())
	})

	t.Run("nil interface is absent", func(t *testing.T) {
		var e error
		assert.False(t, result.Success[string](e).ToOptional().IsPresent())
	})

	t.Run("non-nil pointer is present", func(t *testing.T) {
		n := 3
		o := result.Success[string](&n).ToOptional()
		require.True(t, o.IsPresent())
		v, _ := o.Get()
		assert.Same(t, &n, v)
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "Success[3]", result.Map(result.Success[string](2), func(i int) int { return i + 1 }).String())
	assert.Equal(t, "Error[Invalid value]", result.Error[string, int]("Invalid value").String())
	assert.Equal(t, "Error[[a b]]", result.Error[[]string, int]([]string{"a", "b"}).String())
}
