package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistly/internal/common"
	"artistly/internal/domain/application"
	"artistly/internal/repository/memory"
)

func newReviewFixture(t *testing.T) (*ReviewService, *fakeRecorder, []application.Submission) {
	t.Helper()
	recorder := &fakeRecorder{}
	service := NewReviewService(memory.NewSubmissionRepository(), recorder, nil)
	seed := []application.Submission{
		{Name: "Shakti Mohan", Categories: []string{"dancers"}, Status: application.ReviewPending, SubmittedAt: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)},
		{Name: "Neha Kakkar", Categories: []string{"singers"}, Status: application.ReviewRejected, SubmittedAt: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, service.Seed(context.Background(), seed))
	items, err := service.List(context.Background())
	require.NoError(t, err)
	return service, recorder, items
}

func TestReviewListNewestFirst(t *testing.T) {
	_, _, items := newReviewFixture(t)

	require.Len(t, items, 2)
	assert.Equal(t, "Shakti Mohan", items[0].Name)
	assert.Equal(t, "Neha Kakkar", items[1].Name)
}

func TestReviewApprovePending(t *testing.T) {
	service, recorder, items := newReviewFixture(t)

	approved, err := service.Approve(context.Background(), items[0].ID)

	require.NoError(t, err)
	assert.Equal(t, application.ReviewApproved, approved.Status)
	require.NotNil(t, approved.ReviewedAt)
	assert.Equal(t, []application.ReviewStatus{application.ReviewApproved}, recorder.reviews)
}

func TestReviewRejectPending(t *testing.T) {
	service, _, items := newReviewFixture(t)

	rejected, err := service.Reject(context.Background(), items[0].ID)

	require.NoError(t, err)
	assert.Equal(t, application.ReviewRejected, rejected.Status)
}

func TestReviewFinalStatusCannotChange(t *testing.T) {
	service, recorder, items := newReviewFixture(t)

	_, err := service.Approve(context.Background(), items[1].ID)
	assert.True(t, common.Is(err, common.CodeConflict))

	_, err = service.Approve(context.Background(), items[0].ID)
	require.NoError(t, err)
	_, err = service.Reject(context.Background(), items[0].ID)
	assert.True(t, common.Is(err, common.CodeConflict))
	assert.Len(t, recorder.reviews, 1)
}

func TestReviewUnknownSubmission(t *testing.T) {
	service, _, _ := newReviewFixture(t)

	_, err := service.Reject(context.Background(), common.NewUUID())

	assert.True(t, common.Is(err, common.CodeNotFound))
}
