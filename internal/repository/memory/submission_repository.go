package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"artistly/internal/common"
	"artistly/internal/domain/application"
)

type SubmissionRepository struct {
	mu          sync.Mutex
	submissions map[common.UUID]*application.Submission
	clock       func() time.Time
}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{submissions: make(map[common.UUID]*application.Submission), clock: time.Now}
}

func (r *SubmissionRepository) Create(_ context.Context, s application.Submission) (*application.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = common.NewUUID()
	}
	if _, exists := r.submissions[s.ID]; exists {
		return nil, common.NewError(common.CodeConflict, "submission already exists", nil)
	}
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = r.clock().UTC()
	}
	if s.Status == "" {
		s.Status = application.ReviewPending
	}
	r.submissions[s.ID] = cloneSubmission(&s)
	return cloneSubmission(&s), nil
}

func (r *SubmissionRepository) Get(_ context.Context, id common.UUID) (*application.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.submissions[id]
	if s == nil {
		return nil, common.NewError(common.CodeNotFound, "submission not found", nil)
	}
	return cloneSubmission(s), nil
}

// List returns submissions newest first.
func (r *SubmissionRepository) List(_ context.Context) ([]application.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]application.Submission, 0, len(r.submissions))
	for _, s := range r.submissions {
		items = append(items, *cloneSubmission(s))
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SubmittedAt.Equal(items[j].SubmittedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].SubmittedAt.After(items[j].SubmittedAt)
	})
	return items, nil
}

func (r *SubmissionRepository) UpdateStatus(_ context.Context, id common.UUID, status application.ReviewStatus) (*application.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.submissions[id]
	if s == nil {
		return nil, common.NewError(common.CodeNotFound, "submission not found", nil)
	}
	reviewedAt := r.clock().UTC()
	s.Status = status
	s.ReviewedAt = &reviewedAt
	return cloneSubmission(s), nil
}

func cloneSubmission(s *application.Submission) *application.Submission {
	clone := *s
	clone.Categories = append([]string(nil), s.Categories...)
	clone.Languages = append([]string(nil), s.Languages...)
	if s.ReviewedAt != nil {
		reviewedAt := *s.ReviewedAt
		clone.ReviewedAt = &reviewedAt
	}
	return &clone
}
