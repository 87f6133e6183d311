package images

// RegisterRequest binds a rendered asset URL to the content that produced it.
type RegisterRequest struct {
	Content string `json:"content" binding:"required"`
	URL     string `json:"url" binding:"required"`
}

type RegisterResponse struct {
	RequestID string `json:"requestId,omitempty"`
	Hash      string `json:"hash"`
	URL       string `json:"url"`
}

type LookupResponse struct {
	RequestID string `json:"requestId,omitempty"`
	Hash      string `json:"hash"`
	URL       string `json:"url"`
}
