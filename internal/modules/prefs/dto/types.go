package dto

type PreferencesOutput struct {
	DarkMode bool
	Language string
}
