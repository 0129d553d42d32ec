package services

import (
	"errors"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/MrAmlya/unheard-echoes/models"
	"github.com/MrAmlya/unheard-echoes/policy"
	"github.com/MrAmlya/unheard-echoes/repositories"
)

// contentPolicy keeps basic formatting users paste in but strips
// scripts and the rest. Applied to everything user-submitted before it
// reaches the store.
var contentPolicy = bluemonday.UGCPolicy()

type WritingService interface {
	Create(req models.CreateWritingRequest, caller *policy.Caller) (*models.Writing, error)
	Get(id string) (*models.Writing, error)
	ListPublic() ([]models.Writing, error)
	ListMine(caller *policy.Caller) ([]models.Writing, error)
	Update(id string, req models.UpdateWritingRequest, caller *policy.Caller) (*models.Writing, error)
	Delete(id string, caller *policy.Caller) error
}

type writingService struct {
	writingRepo repositories.WritingRepository
}

func NewWritingService(writingRepo repositories.WritingRepository) WritingService {
	return &writingService{writingRepo: writingRepo}
}

func (s *writingService) Create(req models.CreateWritingRequest, caller *policy.Caller) (*models.Writing, error) {
	if err := decisionErr(policy.Decide(caller, policy.OpCreate, nil)); err != nil {
		return nil, err
	}
	if err := validateWritingFields(req.Content, req.Category); err != nil {
		return nil, err
	}

	writing := &models.Writing{
		Title:    strings.TrimSpace(req.Title),
		Content:  contentPolicy.Sanitize(req.Content),
		Category: req.Category,
		Author:   strings.TrimSpace(req.Author),
		UserID:   caller.ID,
		Status:   policy.InitialStatus(caller.Role),
	}

	// Admin submissions skip the queue and carry their own review stamp.
	if writing.Status == models.StatusApproved {
		policy.Stamp(writing, caller.ID, time.Now())
	}

	if err := s.writingRepo.Create(writing); err != nil {
		return nil, err
	}
	return writing, nil
}

func (s *writingService) Get(id string) (*models.Writing, error) {
	writing, err := s.writingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "writing not found"}
		}
		return nil, err
	}
	return writing, nil
}

func (s *writingService) ListPublic() ([]models.Writing, error) {
	return s.writingRepo.ListByStatus(models.StatusApproved)
}

func (s *writingService) ListMine(caller *policy.Caller) ([]models.Writing, error) {
	if err := decisionErr(policy.Decide(caller, policy.OpListOwn, nil)); err != nil {
		return nil, err
	}
	return s.writingRepo.ListByUser(caller.ID)
}

func (s *writingService) Update(id string, req models.UpdateWritingRequest, caller *policy.Caller) (*models.Writing, error) {
	writing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := decisionErr(policy.Decide(caller, policy.OpUpdate, writing)); err != nil {
		return nil, err
	}
	if err := validateWritingFields(req.Content, req.Category); err != nil {
		return nil, err
	}

	writing.Title = strings.TrimSpace(req.Title)
	writing.Content = contentPolicy.Sanitize(req.Content)
	writing.Category = req.Category
	writing.Author = strings.TrimSpace(req.Author)

	if err := s.writingRepo.UpdateContent(writing); err != nil {
		return nil, err
	}
	return writing, nil
}

func (s *writingService) Delete(id string, caller *policy.Caller) error {
	writing, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := decisionErr(policy.Decide(caller, policy.OpDelete, writing)); err != nil {
		return err
	}
	return s.writingRepo.Delete(writing.ID)
}

func validateWritingFields(content string, category models.WritingCategory) error {
	if strings.TrimSpace(content) == "" {
		return models.ErrorValidation{Message: "content is required"}
	}
	if !models.ValidCategory(category) {
		return models.ErrorValidation{Message: "category must be one of shayari, writing, feeling"}
	}
	return nil
}

// decisionErr maps a policy decision to the shared error taxonomy.
func decisionErr(d policy.Decision) error {
	switch d {
	case policy.DenyUnauthenticated:
		return models.ErrorUnauthorized{Message: "authentication required"}
	case policy.DenyForbidden:
		return models.ErrorForbidden{Message: "insufficient permissions"}
	}
	return nil
}
