package feedback

import (
	"context"
	"fmt"

	"github.com/showforge/episodic/internal/store"
	"github.com/showforge/episodic/internal/utils"
)

type episodeGetter interface {
	GetByID(ctx context.Context, id string) (*store.Episode, error)
}

type feedbackInserter interface {
	Insert(ctx context.Context, row store.FeedbackRow) error
}

type Service struct {
	episodes episodeGetter
	feedback feedbackInserter
}

func NewService(episodes episodeGetter, feedback feedbackInserter) *Service {
	return &Service{episodes: episodes, feedback: feedback}
}

// SubmitFeedback validates the rating and records it against the episode
func (s *Service) SubmitFeedback(ctx context.Context, req *Request) error {
	if req == nil {
		return fmt.Errorf("nil request")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", req.Rating)
	}

	if _, err := s.episodes.GetByID(ctx, req.EpisodeID); err != nil {
		return fmt.Errorf("episode lookup failed: %w", err)
	}

	var commentPtr *string
	if req.Comment != "" {
		commentPtr = &req.Comment
	}

	return s.feedback.Insert(ctx, store.FeedbackRow{
		ID:        utils.NewID(),
		EpisodeID: req.EpisodeID,
		Rating:    int16(req.Rating),
		Comment:   commentPtr,
	})
}
