package dto

// SetLanguageRequest - saves the caller's UI language preference
type SetLanguageRequest struct {
	Language string `json:"language" validate:"required,ui_language"`
}

// LanguageResponse - the resolved language plus its dictionary
type LanguageResponse struct {
	Language     string            `json:"language"`
	Supported    []string          `json:"supported"`
	Translations map[string]string `json:"translations"`
}

// LanguagePreferenceResponse - confirmation of a saved preference
type LanguagePreferenceResponse struct {
	Language string `json:"language"`
}
