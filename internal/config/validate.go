package config

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/validation/internal/user"
	"github.com/thoreinstein/validation/pkg/convert"
	"github.com/thoreinstein/validation/pkg/result"
	"github.com/thoreinstein/validation/pkg/validator"
)

// ErrInvalidConfig wraps the messages of a configuration that did not
// validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Settings is the validated, typed form of Config.
type Settings struct {
	Rules  user.Rules
	Format validator.Format
}

func atLeast(minimum int) convert.Converter[int, int, string] {
	return func(value int, name string) result.Result[string, int] {
		if value < minimum {
			return result.Error[string, int](fmt.Sprintf("%s must be >= %d (got %d)", name, minimum, value))
		}
		return result.Success[string](value)
	}
}

func format() convert.Converter[string, validator.Format, string] {
	return func(value string, name string) result.Result[string, validator.Format] {
		f, err := validator.ParseFormat(value)
		if err != nil {
			return result.Error[string, validator.Format](fmt.Sprintf("%s: %q is not one of %v", name, value, validator.Formats()))
		}
		return result.Success[string](f)
	}
}

// Settings checks every field of c and returns the typed settings or the
// list of problems.
func (c *Config) Settings() result.Result[[]string, Settings] {
	if c == nil {
		return result.Error[[]string, Settings]([]string{"config is nil"})
	}

	ignore := func(s Settings, _ int) Settings { return s }
	setFirst := func(s Settings, n int) Settings { s.Rules.FirstNameMaxLength = n; return s }
	setLast := func(s Settings, n int) Settings { s.Rules.LastNameMaxLength = n; return s }
	setFormat := func(s Settings, f validator.Format) Settings { s.Format = f; return s }

	return validator.Validate(Settings{},
		validator.Of(ignore, "version", c.Version, atLeast(1)),
		validator.Of(setFirst, "first_name_max_length", c.FirstNameMaxLength, atLeast(1)),
		validator.Of(setLast, "last_name_max_length", c.LastNameMaxLength, atLeast(1)),
		validator.Of(setFormat, "format", c.Format, format()),
	)
}

// Validate returns nil for a usable configuration, otherwise an error
// wrapping ErrInvalidConfig that lists every problem.
func Validate(cfg *Config) error {
	r := cfg.Settings()
	if msgs, failed := r.GetErr(); failed {
		return errors.Wrap(ErrInvalidConfig, strings.Join(msgs, "; "))
	}
	return nil
}
