package episodes

import (
	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/store"
)

// CreateRequest drives a fresh script generation for a series. UserID is
// optional; when set, stored preferences fill the fields the request leaves
// empty.
type CreateRequest struct {
	Series         string `json:"series" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Premise        string `json:"premise" binding:"required"`
	Tone           string `json:"tone,omitempty"`
	UserID         string `json:"userId,omitempty"`
	ForcedProvider string `json:"forcedProvider,omitempty"` // openai | gemini
}

// UpdateRequest replaces a draft's content. Locked episodes reject it.
type UpdateRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateResponse struct {
	RequestID string              `json:"requestId,omitempty"`
	Episode   *store.Episode      `json:"episode"`
	Metadata  generation.Metadata `json:"metadata"`
}

type ListResponse struct {
	Series   string          `json:"series"`
	Episodes []store.Episode `json:"episodes"`
	Count    int             `json:"count"`
}
