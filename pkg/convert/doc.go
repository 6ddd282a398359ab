// Package convert provides named, composable field converters.
//
// A [Converter] takes a raw input value and the human-readable name of the
// field it came from, and returns a [result.Result]. Failures carry a
// formatted message that mentions the field name. Converters are plain
// functions: they hold no state and may be shared freely.
//
// # Composition
//
// [AndThen] chains two converters. The second one only runs when the first
// succeeds, and it receives the converted value together with the same
// field name:
//
//	firstName := convert.AndThen(convert.StrNotNull(), convert.MaxLength(10))
//	r := firstName(&raw, "firstName")
//
// # Standard Converters
//
//   - [NotNull] / [StrNotNull]: rejects a nil pointer, dereferences otherwise.
//   - [MaxLength] / [MinLength]: rune length bounds on strings.
//   - [NotBlank]: rejects strings that are empty after trimming.
//   - [TrimSpace]: infallible whitespace normaliser.
//   - [ToEmail]: wraps a string holding exactly one '@' separator in [Email].
//   - [UUID]: parses a string into a uuid.UUID.
package convert
