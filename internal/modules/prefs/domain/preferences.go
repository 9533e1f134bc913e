package domain

// Preferences holds device-local presentation settings. DarkModeSet
// distinguishes "user picked light" from "user never chose", so the
// default theme can stay dark without losing an explicit light choice.
type Preferences struct {
	DarkMode    bool   `yaml:"darkMode"`
	DarkModeSet bool   `yaml:"darkModeSet"`
	Language    string `yaml:"language"`
}

const DefaultLanguage = "en"

// EffectiveDarkMode resolves the theme: dark until the user says otherwise.
func (p Preferences) EffectiveDarkMode() bool {
	if !p.DarkModeSet {
		return true
	}
	return p.DarkMode
}

func (p Preferences) EffectiveLanguage() string {
	if p.Language == "" {
		return DefaultLanguage
	}
	return p.Language
}
