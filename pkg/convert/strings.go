package convert

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thoreinstein/validation/pkg/result"
)

// NotNull rejects a nil pointer with "<name> should not be null" and
// otherwise yields the pointed-to value.
func NotNull[T any]() Converter[*T, T, string] {
	return func(value *T, name string) result.Result[string, T] {
		if value == nil {
			return result.Error[string, T](fmt.Sprintf("%s should not be null", name))
		}
		return result.Success[string](*value)
	}
}

// StrNotNull is NotNull for strings.
func StrNotNull() Converter[*string, string, string] {
	return NotNull[string]()
}

// MaxLength rejects strings longer than maxLen runes.
//
// The message reads "(len(value) < maxLen)" although the check is
// len > maxLen; the wording is kept so existing reports stay stable.
func MaxLength(maxLen int) Converter[string, string, string] {
	return func(value string, name string) result.Result[string, string] {
		if utf8.RuneCountInString(value) > maxLen {
			return result.Error[string, string](fmt.Sprintf("%s is too long (len(value) < %d)", name, maxLen))
		}
		return result.Success[string](value)
	}
}

// MinLength rejects strings shorter than minLen runes.
func MinLength(minLen int) Converter[string, string, string] {
	return func(value string, name string) result.Result[string, string] {
		if utf8.RuneCountInString(value) < minLen {
			return result.Error[string, string](fmt.Sprintf("%s is too short (len(value) >= %d)", name, minLen))
		}
		return result.Success[string](value)
	}
}

// NotBlank rejects strings that are empty once surrounding whitespace is
// removed. The value itself is passed through untrimmed.
func NotBlank() Converter[string, string, string] {
	return func(value string, name string) result.Result[string, string] {
		if strings.TrimSpace(value) == "" {
			return result.Error[string, string](fmt.Sprintf("%s should not be blank", name))
		}
		return result.Success[string](value)
	}
}

// TrimSpace removes leading and trailing whitespace.
func TrimSpace() Converter[string, string, string] {
	return Lift(strings.TrimSpace)
}
