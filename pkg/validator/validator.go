package validator

import (
	"log/slog"

	"github.com/thoreinstein/validation/pkg/result"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives per-field debug records.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Validator runs properties against targets of one type.
type Validator[Target any] struct {
	logger *slog.Logger
}

// New creates a Validator. Without WithLogger nothing is logged.
func New[Target any](opts ...Option) *Validator[Target] {
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}
	return &Validator[Target]{logger: o.logger}
}

// Validate evaluates every property in order. Each success is applied to
// the target immediately and the updated target is passed on; each failure
// contributes its message. The result is the final target when nothing
// failed, otherwise the messages in declaration order.
func (v *Validator[Target]) Validate(target Target, properties ...Property[Target]) result.Result[[]string, Target] {
	var messages []string

	for _, p := range properties {
		r := p.Apply(target)
		if next, ok := r.Get(); ok {
			target = next
			v.logger.Debug("field accepted", "field", p.Name())
			continue
		}
		msg := r.Err()
		messages = append(messages, msg)
		v.logger.Debug("field rejected", "field", p.Name(), "reason", msg)
	}

	v.logger.Debug("validation finished",
		"fields", len(properties),
		"errors", len(messages),
	)

	if len(messages) > 0 {
		return result.Error[[]string, Target](messages)
	}
	return result.Success[[]string](target)
}

// Validate runs properties against target with a default Validator.
func Validate[Target any](target Target, properties ...Property[Target]) result.Result[[]string, Target] {
	return New[Target]().Validate(target, properties...)
}
