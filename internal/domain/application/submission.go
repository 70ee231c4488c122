package application

import (
	"time"

	"artistly/internal/common"
)

// ReviewStatus is the moderation status of a received submission.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

type Submission struct {
	ID          common.UUID  `json:"id"`
	DraftID     common.UUID  `json:"draftId,omitempty"`
	Name        string       `json:"name"`
	Categories  []string     `json:"categories"`
	Languages   []string     `json:"languages,omitempty"`
	Location    string       `json:"location"`
	FeeRange    string       `json:"feeRange"`
	Status      ReviewStatus `json:"status"`
	SubmittedAt time.Time    `json:"submittedAt"`
	ReviewedAt  *time.Time   `json:"reviewedAt,omitempty"`
}

func SubmissionFromDraft(d Draft, submittedAt time.Time) Submission {
	return Submission{
		DraftID:     d.ID,
		Name:        d.Name,
		Categories:  append([]string(nil), d.Categories...),
		Languages:   append([]string(nil), d.Languages...),
		Location:    d.Location,
		FeeRange:    d.FeeRange,
		Status:      ReviewPending,
		SubmittedAt: submittedAt,
	}
}
