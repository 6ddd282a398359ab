package convert

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/thoreinstein/validation/pkg/result"
)

// UUID parses a textual UUID in any of the forms accepted by uuid.Parse.
func UUID() Converter[string, uuid.UUID, string] {
	return func(value string, name string) result.Result[string, uuid.UUID] {
		id, err := uuid.Parse(value)
		if err != nil {
			return result.Error[string, uuid.UUID](fmt.Sprintf("%s: %s is not a valid UUID", name, value))
		}
		return result.Success[string](id)
	}
}
