package feedback

// Request carries a reader rating for a generated episode.
type Request struct {
	EpisodeID string `json:"episodeId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"` // 1..5
	Comment   string `json:"comment,omitempty"`
}

// Response is a minimal ack payload
type Response struct {
	RequestID string `json:"requestId,omitempty"`
	Success   bool   `json:"success"`
}
