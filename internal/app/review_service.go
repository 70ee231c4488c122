package app

import (
	"context"
	"log/slog"

	"artistly/internal/common"
	"artistly/internal/domain/application"
)

// ReviewService moderates received submissions. Only pending submissions can be
// approved or rejected; both outcomes are final.
type ReviewService struct {
	repo     application.SubmissionRepository
	recorder Recorder
	logger   *slog.Logger
}

func NewReviewService(repo application.SubmissionRepository, recorder Recorder, logger *slog.Logger) *ReviewService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{repo: repo, recorder: recorderOrNoop(recorder), logger: logger}
}

// Seed files existing submissions, e.g. the demo rows shipped with the dataset.
func (s *ReviewService) Seed(ctx context.Context, items []application.Submission) error {
	for _, item := range items {
		if _, err := s.repo.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReviewService) List(ctx context.Context) ([]application.Submission, error) {
	return s.repo.List(ctx)
}

func (s *ReviewService) Get(ctx context.Context, id common.UUID) (*application.Submission, error) {
	return s.repo.Get(ctx, id)
}

func (s *ReviewService) Approve(ctx context.Context, id common.UUID) (*application.Submission, error) {
	return s.decide(ctx, id, application.ReviewApproved)
}

func (s *ReviewService) Reject(ctx context.Context, id common.UUID) (*application.Submission, error) {
	return s.decide(ctx, id, application.ReviewRejected)
}

func (s *ReviewService) decide(ctx context.Context, id common.UUID, next application.ReviewStatus) (*application.Submission, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAllowedReviewTransition(current.Status, next) {
		return nil, common.NewError(common.CodeConflict, "submission status is final", nil)
	}
	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	s.recorder.ReviewDecided(next)
	s.logger.Info("submission reviewed", slog.String("submission_id", id.String()), slog.String("status", string(next)))
	return updated, nil
}

func isAllowedReviewTransition(from, to application.ReviewStatus) bool {
	if from != application.ReviewPending {
		return false
	}
	return to == application.ReviewApproved || to == application.ReviewRejected
}
