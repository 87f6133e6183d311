package assets

import "github.com/showforge/episodic/internal/generation"

// Kind names one production asset derived from an episode script.
type Kind string

const (
	KindStoryboard Kind = "storyboard"
	KindProps      Kind = "props"
	KindLocations  Kind = "locations"
	KindCasting    Kind = "casting"
	KindMarketing  Kind = "marketing"
)

// Request asks for one asset kind to be generated from a stored episode.
type Request struct {
	EpisodeID      string `json:"episodeId" binding:"required"`
	ForcedProvider string `json:"forcedProvider,omitempty"` // openai | gemini
}

type Response struct {
	RequestID string                `json:"requestId,omitempty"`
	EpisodeID string                `json:"episodeId"`
	Kind      Kind                  `json:"kind"`
	EngineID  string                `json:"engineId"`
	Content   string                `json:"content"`
	Provider  generation.ProviderID `json:"provider"`
	Model     string                `json:"model"`
	Metadata  generation.Metadata   `json:"metadata"`
}
