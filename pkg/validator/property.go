package validator

import (
	"github.com/thoreinstein/validation/pkg/convert"
	"github.com/thoreinstein/validation/pkg/result"
)

// Property is one field bound to a target type. The field's own value and
// converted types are hidden so properties of different types can be
// validated together.
type Property[Target any] interface {
	// Name returns the field name used in messages.
	Name() string
	// Apply converts the bound value and, on success, stores it on target.
	// On failure the converter's message is returned and target is left
	// untouched.
	Apply(target Target) result.Result[string, Target]
}

type property[In, Value, Target any] struct {
	set       func(Target, Value) Target
	name      string
	value     In
	converter convert.Converter[In, Value, string]
}

// Of binds a raw value and converter to a field. set stores the converted
// value on the target and returns the updated target; method expressions
// such as (*Builder).FirstName fit directly.
func Of[In, Value, Target any](
	set func(Target, Value) Target,
	name string,
	value In,
	converter convert.Converter[In, Value, string],
) Property[Target] {
	return property[In, Value, Target]{
		set:       set,
		name:      name,
		value:     value,
		converter: converter,
	}
}

func (p property[In, Value, Target]) Name() string {
	return p.name
}

func (p property[In, Value, Target]) Apply(target Target) result.Result[string, Target] {
	return result.Map(p.converter(p.value, p.name), func(v Value) Target {
		return p.set(target, v)
	})
}
