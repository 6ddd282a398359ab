package user

import (
	"github.com/thoreinstein/validation/pkg/convert"
	"github.com/thoreinstein/validation/pkg/result"
	"github.com/thoreinstein/validation/pkg/validator"
)

// Input holds raw, unvalidated user fields. A nil pointer means the field
// was not supplied at all.
type Input struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// Rules are the tunable limits applied to Input.
type Rules struct {
	FirstNameMaxLength int
	LastNameMaxLength  int
}

// DefaultRules returns the limits used when no configuration is present.
func DefaultRules() Rules {
	return Rules{
		FirstNameMaxLength: 10,
		LastNameMaxLength:  64,
	}
}

// Properties binds every Input field to its Builder setter.
func Properties(in Input, rules Rules) []validator.Property[*Builder] {
	return []validator.Property[*Builder]{
		validator.Of((*Builder).FirstName, "firstName", in.FirstName,
			convert.AndThen(convert.StrNotNull(), convert.MaxLength(rules.FirstNameMaxLength))),
		validator.Of((*Builder).LastName, "lastName", in.LastName,
			convert.AndThen(convert.StrNotNull(), convert.MaxLength(rules.LastNameMaxLength))),
		validator.Of((*Builder).Email, "email", in.Email,
			convert.AndThen(convert.StrNotNull(), convert.ToEmail())),
	}
}

// Validate checks in against rules and fills a new Builder.
func Validate(in Input, rules Rules, opts ...validator.Option) result.Result[[]string, *Builder] {
	return validator.New[*Builder](opts...).Validate(NewBuilder(), Properties(in, rules)...)
}

// Build validates in and builds the User when every field passed.
func Build(in Input, rules Rules, opts ...validator.Option) result.Result[[]string, User] {
	return result.Map(Validate(in, rules, opts...), (*Builder).Build)
}
