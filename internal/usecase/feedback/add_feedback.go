package feedback

import (
	"context"

	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

type AddFeedbackInput struct {
	CaregiverID   uint
	UserID        uint
	AppointmentID uint
	Rate          float64
	Comments      string
}

type AddFeedback struct {
	repo schedule.Repository
}

func NewAddFeedback(repo schedule.Repository) *AddFeedback {
	return &AddFeedback{repo: repo}
}

type AddFeedbackResult struct {
	Feedback *models.Feedback        `json:"feedback"`
	Summary  *models.FeedbackSummary `json:"summary"`
}

// Execute records one rating and folds it into the caregiver's running
// summary. The increment-and-recompute runs atomically per caregiver in
// the repository, so concurrent ratings never lose updates.
func (uc *AddFeedback) Execute(
	ctx context.Context,
	in AddFeedbackInput,
) (*AddFeedbackResult, error) {

	exists, err := uc.repo.CaregiverExists(ctx, in.CaregiverID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrBusiness("invalid_caregiver")
	}

	dup, err := uc.repo.FeedbackExists(ctx, in.UserID, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, httperr.ErrBusiness("feedback_exists")
	}

	fb := &models.Feedback{
		UserID:        in.UserID,
		CaregiverID:   in.CaregiverID,
		AppointmentID: in.AppointmentID,
		Rate:          in.Rate,
		Comments:      in.Comments,
	}

	summary, err := uc.repo.ApplyFeedback(ctx, fb)
	if err != nil {
		return nil, err
	}

	return &AddFeedbackResult{Feedback: fb, Summary: summary}, nil
}
