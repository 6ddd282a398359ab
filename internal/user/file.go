package user

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/validation/internal/fileutil"
)

// document is the on-disk form of Input. JSON files parse as YAML.
type document struct {
	FirstName *string `yaml:"first_name"`
	LastName  *string `yaml:"last_name"`
	Email     *string `yaml:"email"`
}

// LoadInput reads an Input from a YAML or JSON file. Keys that are absent
// or null stay nil and are reported as missing by Validate.
func LoadInput(path string) (Input, error) {
	data, err := fileutil.ReadLimited(path, 0)
	if err != nil {
		return Input{}, errors.Wrapf(err, "loading user input from %s", path)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Input{}, errors.Wrapf(err, "parsing user input %s", path)
	}

	return Input(doc), nil
}
