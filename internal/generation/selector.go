package generation

// Decision is the routing outcome for one request. Model is set only when
// the registry supplied a preferred model; Reason records which selection
// step decided, for diagnostics.
type Decision struct {
	Provider ProviderID
	Model    string
	Reason   string
}

const (
	ReasonForced     = "forced"
	ReasonRegistry   = "registry"
	ReasonPattern    = "pattern"
	ReasonClassifier = "classifier"
	ReasonDefault    = "default"
)

// Selector decides which provider serves a request. It holds only immutable
// state and is safe for concurrent use.
type Selector struct {
	registry        *EngineRegistry
	defaultProvider ProviderID
}

// NewSelector builds a selector around an engine registry. An invalid
// default falls back to Gemini, the creative-oriented backend.
func NewSelector(registry *EngineRegistry, defaultProvider ProviderID) *Selector {
	if !defaultProvider.Valid() {
		defaultProvider = ProviderGemini
	}
	if registry == nil {
		registry = NewEngineRegistry(nil)
	}
	return &Selector{registry: registry, defaultProvider: defaultProvider}
}

// Select returns only the provider half of the decision.
func (s *Selector) Select(req GenerationRequest) ProviderID {
	return s.Decide(req).Provider
}

// Decide applies the selection precedence:
//  1. an explicit ForcedProvider wins outright;
//  2. an engine id found in the registry routes by the model's family;
//  3. an unregistered engine id is substring-matched against the pattern
//     tables, falling back to the configured default provider;
//  4. with no engine id at all, the prompt itself is classified.
//
// A registry model whose family is unrecognized falls through to step 3.
func (s *Selector) Decide(req GenerationRequest) Decision {
	if req.ForcedProvider.Valid() {
		return Decision{Provider: req.ForcedProvider, Reason: ReasonForced}
	}

	if req.EngineID != "" {
		if model, ok := s.registry.Lookup(req.EngineID); ok {
			if family, known := FamilyOf(model); known {
				return Decision{Provider: family, Model: model, Reason: ReasonRegistry}
			}
		}
		if provider, ok := matchEnginePattern(req.EngineID); ok {
			return Decision{Provider: provider, Reason: ReasonPattern}
		}
		return Decision{Provider: s.defaultProvider, Reason: ReasonDefault}
	}

	if IsCreativeTask(req.Prompt) {
		return Decision{Provider: ProviderGemini, Reason: ReasonClassifier}
	}
	return Decision{Provider: ProviderOpenAI, Reason: ReasonClassifier}
}
