package generation

import "strings"

// EngineRegistry maps a logical engine id to the model that should serve it.
// It is built once at process start and never mutated afterwards, so reads
// need no locking.
type EngineRegistry struct {
	entries map[string]string
}

// NewEngineRegistry copies entries so later mutation of the source map
// cannot reach the registry.
func NewEngineRegistry(entries map[string]string) *EngineRegistry {
	copied := make(map[string]string, len(entries))
	for id, model := range entries {
		copied[id] = model
	}
	return &EngineRegistry{entries: copied}
}

// DefaultEngineRegistry holds the curated engine table shipped with the
// service. Creative engines prefer Gemini variants, structural and
// analytical engines prefer OpenAI variants.
func DefaultEngineRegistry() *EngineRegistry {
	return NewEngineRegistry(map[string]string{
		"character-engine-v2":  "gemini-2.0-flash",
		"dialogue-engine-v1":   "gemini-2.0-flash",
		"script-engine-v1":     "gemini-1.5-pro",
		"storyboard-engine-v1": "gemini-1.5-pro",
		"props-engine-v1":      "gemini-1.5-flash",
		"location-engine-v1":   "gemini-1.5-flash",
		"casting-engine-v1":    "gemini-2.0-flash",
		"marketing-engine-v1":  "gemini-2.0-flash",
		"premise-engine-v2":    "gpt-4o",
		"structure-engine-v1":  "gpt-4o",
		"outline-engine-v1":    "gpt-4o-mini",
		"continuity-engine-v1": "gpt-4o-mini",
	})
}

// Lookup returns the preferred model for an engine id.
func (r *EngineRegistry) Lookup(engineID string) (string, bool) {
	model, ok := r.entries[engineID]
	return model, ok
}

// Len reports the number of registered engines.
func (r *EngineRegistry) Len() int {
	return len(r.entries)
}

// FamilyOf reports which provider a model identifier belongs to. Unknown
// families return ok=false and leave routing to the next selection step.
func FamilyOf(model string) (ProviderID, bool) {
	switch {
	case strings.HasPrefix(model, "gemini"):
		return ProviderGemini, true
	case strings.HasPrefix(model, "gpt-"),
		strings.HasPrefix(model, "o1"),
		strings.HasPrefix(model, "o3"):
		return ProviderOpenAI, true
	default:
		return "", false
	}
}
