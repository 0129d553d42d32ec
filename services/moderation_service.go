package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MrAmlya/unheard-echoes/models"
	"github.com/MrAmlya/unheard-echoes/policy"
	"github.com/MrAmlya/unheard-echoes/repositories"
)

type ModerationService interface {
	Approve(id string, caller *policy.Caller) (*models.Writing, error)
	Reject(id string, caller *policy.Caller) (*models.Writing, error)
	ListPending(caller *policy.Caller) ([]models.Writing, error)
	ListReviewed(caller *policy.Caller) ([]models.Writing, error)
}

type moderationService struct {
	writingRepo repositories.WritingRepository
}

func NewModerationService(writingRepo repositories.WritingRepository) ModerationService {
	return &moderationService{writingRepo: writingRepo}
}

func (s *moderationService) Approve(id string, caller *policy.Caller) (*models.Writing, error) {
	return s.review(id, models.StatusApproved, policy.OpApprove, caller)
}

func (s *moderationService) Reject(id string, caller *policy.Caller) (*models.Writing, error) {
	return s.review(id, models.StatusRejected, policy.OpReject, caller)
}

func (s *moderationService) review(id string, to models.WritingStatus, op policy.Operation, caller *policy.Caller) (*models.Writing, error) {
	if err := decisionErr(policy.Decide(caller, op, nil)); err != nil {
		return nil, err
	}

	writing, err := s.writingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "writing not found"}
		}
		return nil, err
	}

	if err := policy.Transition(writing, to, caller.ID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.writingRepo.UpdateReview(writing); err != nil {
		return nil, err
	}
	return writing, nil
}

func (s *moderationService) ListPending(caller *policy.Caller) ([]models.Writing, error) {
	if err := decisionErr(policy.Decide(caller, policy.OpListPending, nil)); err != nil {
		return nil, err
	}
	return s.writingRepo.ListByStatus(models.StatusPending)
}

// ListReviewed returns approved and rejected writings, most recently
// reviewed first.
func (s *moderationService) ListReviewed(caller *policy.Caller) ([]models.Writing, error) {
	if err := decisionErr(policy.Decide(caller, policy.OpListReviewed, nil)); err != nil {
		return nil, err
	}
	return s.writingRepo.ListReviewed()
}
