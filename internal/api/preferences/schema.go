package preferences

// UpdateRequest replaces a user's stored generation defaults. Empty fields
// clear the matching default.
type UpdateRequest struct {
	Tone         string `json:"tone,omitempty"`
	Style        string `json:"style,omitempty"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
}
