package generation

import "strings"

// Keyword tables behind the creative/analytical heuristic. Matching is
// substring-based, not token-based: "characterization" counts for
// "character". Tables are fixed at compile time so the classifier stays a
// pure function.
var creativeKeywords = []string{
	"character",
	"dialogue",
	"emotion",
	"mood",
	"story",
	"scene",
	"creative",
	"drama",
	"narrative",
	"romance",
	"comedy",
	"imagine",
}

var technicalKeywords = []string{
	"structure",
	"analysis",
	"framework",
	"outline",
	"premise",
	"logic",
	"technical",
	"format",
	"schema",
	"metric",
	"evaluate",
	"consistency",
}

// Engine-id pattern tables used when an engine id misses the registry.
// The creative list is consulted first.
var creativeEnginePatterns = []string{
	"character",
	"dialogue",
	"story",
	"scene",
	"script",
	"casting",
	"storyboard",
	"marketing",
}

var analyticalEnginePatterns = []string{
	"premise",
	"structure",
	"outline",
	"analysis",
	"continuity",
	"logic",
	"format",
}

// IsCreativeTask scores a prompt against both keyword tables and reports
// whether the creative score wins. Ties go to creative.
func IsCreativeTask(prompt string) bool {
	lowered := strings.ToLower(prompt)
	creative := keywordScore(lowered, creativeKeywords)
	technical := keywordScore(lowered, technicalKeywords)
	return creative >= technical
}

// keywordScore sums substring occurrences of every keyword in text.
// text must already be lower-cased.
func keywordScore(text string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		score += strings.Count(text, kw)
	}
	return score
}

// matchEnginePattern routes an unregistered engine id by substring matching
// its name against the pattern tables. The first table with a hit decides.
func matchEnginePattern(engineID string) (ProviderID, bool) {
	lowered := strings.ToLower(engineID)
	for _, p := range creativeEnginePatterns {
		if strings.Contains(lowered, p) {
			return ProviderGemini, true
		}
	}
	for _, p := range analyticalEnginePatterns {
		if strings.Contains(lowered, p) {
			return ProviderOpenAI, true
		}
	}
	return "", false
}
