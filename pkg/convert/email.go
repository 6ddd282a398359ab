package convert

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/validation/pkg/result"
)

// Email is an address accepted by ToEmail.
type Email struct {
	address string
}

// NewEmail wraps address without checking it.
func NewEmail(address string) Email {
	return Email{address: address}
}

// Address returns the raw address.
func (e Email) Address() string {
	return e.address
}

func (e Email) String() string {
	return e.address
}

// MarshalText implements encoding.TextMarshaler.
func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.address), nil
}

// ToEmail accepts a string that splits on '@' into exactly two parts and
// wraps it in an Email. Trailing empty parts are discarded before counting,
// so "a@" and "a@b@" are rejected while "@b" is accepted.
func ToEmail() Converter[string, Email, string] {
	return func(value string, name string) result.Result[string, Email] {
		if len(splitDropTrailing(value, "@")) != 2 {
			return result.Error[string, Email](fmt.Sprintf("%s: %s is not a valid email", name, value))
		}
		return result.Success[string](NewEmail(value))
	}
}

// splitDropTrailing splits s around sep and removes trailing empty
// elements.
func splitDropTrailing(s, sep string) []string {
	parts := strings.Split(s, sep)
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}
