package user

// Preset is a named sample Input.
type Preset struct {
	Name        string
	Description string
	Input       Input
}

func str(s string) *string { return &s }

// Presets returns the sample inputs offered by the CLI picker.
func Presets() []Preset {
	return []Preset{
		{
			Name:        "valid",
			Description: "every field passes",
			Input:       Input{FirstName: str("Slavik"), LastName: str("XXX"), Email: str("user@wp.pl")},
		},
		{
			Name:        "long-first-name",
			Description: "first name exceeds the configured maximum length",
			Input:       Input{FirstName: str("Bartholomew-Maximilian"), LastName: str("XXX"), Email: str("user@wp.pl")},
		},
		{
			Name:        "missing-last-name",
			Description: "last name is not supplied",
			Input:       Input{FirstName: str("Slavik"), Email: str("user@wp.pl")},
		},
		{
			Name:        "bad-email",
			Description: "e-mail address contains two '@' separators",
			Input:       Input{FirstName: str("Slavik"), LastName: str("XXX"), Email: str("a@b@c")},
		},
		{
			Name:        "everything-wrong",
			Description: "every field fails",
			Input:       Input{FirstName: str("Bartholomew-Maximilian"), Email: str("no-at-sign")},
		},
	}
}

// FindPreset returns the preset called name.
func FindPreset(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
