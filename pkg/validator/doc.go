// Package validator checks a flat set of named input values against
// per-field converters and builds a target object from the ones that pass.
//
// Each field is described by a [Property]: the raw value, the field name,
// a [convert.Converter], and a mutator that stores the converted value on
// the target. [Validate] evaluates every property in declaration order,
// collects the messages of the ones that fail, and returns a single
// result.Result holding either the target or the ordered list of
// messages.
//
// # Basic Usage
//
//	report := validator.Validate(user.NewBuilder(),
//		validator.Of((*user.Builder).FirstName, "firstName", firstName,
//			convert.AndThen(convert.StrNotNull(), convert.MaxLength(10))),
//		validator.Of((*user.Builder).LastName, "lastName", lastName, convert.StrNotNull()),
//	)
//	if report.IsError() {
//		for _, msg := range report.Err() {
//			fmt.Println(msg)
//		}
//	}
//
// # Mutation Order
//
// A property's mutator runs as soon as its converter succeeds, before the
// remaining properties are evaluated. With a pointer target (such as a
// builder) fields that passed stay applied even when the overall result is
// an error. The value returned by each mutator is handed to the next
// property, so value targets work as well; for those only a successful
// report carries the final value.
//
// # Reporting
//
// [Reporter] renders a [Report] as coloured text, JSON, YAML or TOML.
package validator
