package generation

import "testing"

func TestIsCreativeTask(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   bool
	}{
		{
			name:   "creative heavy prompt",
			prompt: "Write a scene where the character confronts her rival, heavy on dialogue and emotion",
			want:   true,
		},
		{
			name:   "technical heavy prompt",
			prompt: "Describe the framework structure and provide an analysis of the premise logic",
			want:   false,
		},
		{
			name:   "zero vs zero tie favors creative",
			prompt: "hello there",
			want:   true,
		},
		{
			name:   "equal scores favor creative",
			prompt: "character structure",
			want:   true,
		},
		{
			name:   "empty prompt ties creative",
			prompt: "",
			want:   true,
		},
		{
			name:   "substring matches inside longer words",
			prompt: "the uncharacteristic melodrama of it all",
			want:   true,
		},
		{
			name:   "case insensitive",
			prompt: "OUTLINE THE FRAMEWORK",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCreativeTask(tt.prompt); got != tt.want {
				t.Errorf("IsCreativeTask(%q) = %v, want %v", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestIsCreativeTask_Deterministic(t *testing.T) {
	prompt := "a story about a character with an outline"
	first := IsCreativeTask(prompt)
	for i := 0; i < 50; i++ {
		if IsCreativeTask(prompt) != first {
			t.Fatal("classifier returned different results for identical input")
		}
	}
}

func TestKeywordScore_CountsOccurrences(t *testing.T) {
	// Two hits on "character" plus one on "dialogue".
	text := "character meets character for dialogue"
	if got := keywordScore(text, creativeKeywords); got != 3 {
		t.Errorf("keywordScore = %d, want 3", got)
	}
}

func TestMatchEnginePattern(t *testing.T) {
	tests := []struct {
		name     string
		engineID string
		want     ProviderID
		matched  bool
	}{
		{"creative engine id", "character-builder-v9", ProviderGemini, true},
		{"storyboard engine id", "storyboard-draft", ProviderGemini, true},
		{"analytical engine id", "premise-checker", ProviderOpenAI, true},
		{"continuity engine id", "continuity-audit-v3", ProviderOpenAI, true},
		{"creative list wins when both match", "story-structure-engine", ProviderGemini, true},
		{"uppercase engine id", "CHARACTER-ENGINE-V9", ProviderGemini, true},
		{"no match", "telemetry-engine-v1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchEnginePattern(tt.engineID)
			if ok != tt.matched {
				t.Fatalf("matchEnginePattern(%q) matched=%v, want %v", tt.engineID, ok, tt.matched)
			}
			if got != tt.want {
				t.Errorf("matchEnginePattern(%q) = %q, want %q", tt.engineID, got, tt.want)
			}
		})
	}
}
