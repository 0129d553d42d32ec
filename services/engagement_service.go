package services

import (
	"errors"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/MrAmlya/unheard-echoes/models"
	"github.com/MrAmlya/unheard-echoes/policy"
	"github.com/MrAmlya/unheard-echoes/repositories"
)

// Comments are plain text; strip all markup.
var commentPolicy = bluemonday.StrictPolicy()

type EngagementService interface {
	ToggleLike(writingID string, caller *policy.Caller) (*models.LikeResponse, error)
	AddComment(writingID string, req models.AddCommentRequest) (*models.Comment, error)
	DeleteComment(writingID, commentID string, caller *policy.Caller) error
}

type engagementService struct {
	writingRepo repositories.WritingRepository
	commentRepo repositories.CommentRepository
	likeRepo    repositories.LikeRepository
}

func NewEngagementService(
	writingRepo repositories.WritingRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
) EngagementService {
	return &engagementService{
		writingRepo: writingRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

// ToggleLike is a real toggle for authenticated callers (at most one
// like per user per writing). Anonymous callers only bump the shared
// counter; de-duplication is left to the caller's local state.
func (s *engagementService) ToggleLike(writingID string, caller *policy.Caller) (*models.LikeResponse, error) {
	writing, err := s.getWriting(writingID)
	if err != nil {
		return nil, err
	}

	if caller == nil {
		if err := s.writingRepo.AddLikes(writing.ID, 1); err != nil {
			return nil, err
		}
		return s.likeResponse(writing.ID, true)
	}

	_, err = s.likeRepo.Get(caller.ID, writing.ID)
	switch {
	case err == nil:
		// Unlike
		if err := s.likeRepo.Delete(caller.ID, writing.ID); err != nil {
			return nil, err
		}
		if err := s.writingRepo.AddLikes(writing.ID, -1); err != nil {
			return nil, err
		}
		return s.likeResponse(writing.ID, false)
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.likeRepo.Create(&models.Like{UserID: caller.ID, WritingID: writing.ID}); err != nil {
			return nil, err
		}
		if err := s.writingRepo.AddLikes(writing.ID, 1); err != nil {
			return nil, err
		}
		return s.likeResponse(writing.ID, true)
	default:
		return nil, err
	}
}

func (s *engagementService) AddComment(writingID string, req models.AddCommentRequest) (*models.Comment, error) {
	name := strings.TrimSpace(req.Name)
	text := strings.TrimSpace(req.Text)

	if name == "" || text == "" {
		return nil, models.ErrorValidation{Message: "name and comment text are required"}
	}
	// Limits are in characters, not bytes.
	if utf8.RuneCountInString(name) > models.CommentNameMaxLen {
		return nil, models.ErrorValidation{Message: "name must be 50 characters or less"}
	}
	if utf8.RuneCountInString(text) > models.CommentTextMaxLen {
		return nil, models.ErrorValidation{Message: "comment must be 500 characters or less"}
	}

	// Comments are plain text: strip markup, then undo the sanitizer's
	// entity escaping so "5 < 6" is stored as typed.
	name = strings.TrimSpace(html.UnescapeString(commentPolicy.Sanitize(name)))
	text = strings.TrimSpace(html.UnescapeString(commentPolicy.Sanitize(text)))
	if name == "" || text == "" {
		return nil, models.ErrorValidation{Message: "name and comment text are required"}
	}

	writing, err := s.getWriting(writingID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		WritingID: writing.ID,
		Name:      name,
		Text:      text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *engagementService) DeleteComment(writingID, commentID string, caller *policy.Caller) error {
	if err := decisionErr(policy.Decide(caller, policy.OpDeleteComment, nil)); err != nil {
		return err
	}

	if _, err := s.getWriting(writingID); err != nil {
		return err
	}

	if _, err := s.commentRepo.Get(writingID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "comment not found"}
		}
		return err
	}
	return s.commentRepo.Delete(writingID, commentID)
}

func (s *engagementService) getWriting(id string) (*models.Writing, error) {
	writing, err := s.writingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "writing not found"}
		}
		return nil, err
	}
	return writing, nil
}

func (s *engagementService) likeResponse(writingID string, liked bool) (*models.LikeResponse, error) {
	writing, err := s.getWriting(writingID)
	if err != nil {
		return nil, err
	}
	return &models.LikeResponse{Liked: liked, Likes: writing.Likes}, nil
}
