package services

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MrAmlya/unheard-echoes/models"
)

// In-memory fakes for the repository interfaces. The pack under test is
// the service layer; persistence behavior itself is covered by the
// integration suite in test/.

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = strings.ToLower(user.Email)
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if len(f.users) == 0 {
		user.Role = models.RoleAdmin
	} else if user.Role == "" {
		user.Role = models.RoleUser
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	email = strings.ToLower(email)
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByGoogleID(googleID string) (*models.User, error) {
	for _, u := range f.users {
		if u.GoogleID != "" && u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

type fakeWritingRepo struct {
	writings map[string]*models.Writing
	// afterGet, when set, runs after GetByID has taken its snapshot;
	// lets tests interleave a concurrent write into a read-modify-write.
	afterGet func()
}

func newFakeWritingRepo() *fakeWritingRepo {
	return &fakeWritingRepo{writings: map[string]*models.Writing{}}
}

func (f *fakeWritingRepo) Create(writing *models.Writing) error {
	if writing.ID == "" {
		writing.ID = uuid.NewString()
	}
	cp := *writing
	f.writings[writing.ID] = &cp
	return nil
}

func (f *fakeWritingRepo) GetByID(id string) (*models.Writing, error) {
	w, ok := f.writings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *w
	if f.afterGet != nil {
		f.afterGet()
	}
	return &cp, nil
}

func (f *fakeWritingRepo) UpdateContent(writing *models.Writing) error {
	w, ok := f.writings[writing.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	w.Title = writing.Title
	w.Content = writing.Content
	w.Category = writing.Category
	w.Author = writing.Author
	return nil
}

func (f *fakeWritingRepo) UpdateReview(writing *models.Writing) error {
	w, ok := f.writings[writing.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	w.Status = writing.Status
	w.ReviewedAt = writing.ReviewedAt
	w.ReviewedBy = writing.ReviewedBy
	return nil
}

func (f *fakeWritingRepo) Delete(id string) error {
	delete(f.writings, id)
	return nil
}

func (f *fakeWritingRepo) ListByStatus(status models.WritingStatus) ([]models.Writing, error) {
	var out []models.Writing
	for _, w := range f.writings {
		if w.Status == status {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeWritingRepo) ListByUser(userID string) ([]models.Writing, error) {
	var out []models.Writing
	for _, w := range f.writings {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeWritingRepo) ListReviewed() ([]models.Writing, error) {
	var out []models.Writing
	for _, w := range f.writings {
		if w.Status == models.StatusApproved || w.Status == models.StatusRejected {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		var ti, tj int64
		if out[i].ReviewedAt != nil {
			ti = out[i].ReviewedAt.UnixNano()
		}
		if out[j].ReviewedAt != nil {
			tj = out[j].ReviewedAt.UnixNano()
		}
		return ti > tj
	})
	return out, nil
}

func (f *fakeWritingRepo) AddLikes(id string, delta int) error {
	w, ok := f.writings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	w.Likes += delta
	if w.Likes < 0 {
		w.Likes = 0
	}
	return nil
}

type fakeCommentRepo struct {
	comments map[string]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*models.Comment{}}
}

func (f *fakeCommentRepo) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) Get(writingID, commentID string) (*models.Comment, error) {
	c, ok := f.comments[commentID]
	if !ok || c.WritingID != writingID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentRepo) Delete(writingID, commentID string) error {
	if c, ok := f.comments[commentID]; ok && c.WritingID == writingID {
		delete(f.comments, commentID)
	}
	return nil
}

type fakeLikeRepo struct {
	likes map[string]*models.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[string]*models.Like{}}
}

func likeKey(userID, writingID string) string {
	return userID + "/" + writingID
}

func (f *fakeLikeRepo) Get(userID, writingID string) (*models.Like, error) {
	l, ok := f.likes[likeKey(userID, writingID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (f *fakeLikeRepo) Create(like *models.Like) error {
	f.likes[likeKey(like.UserID, like.WritingID)] = like
	return nil
}

func (f *fakeLikeRepo) Delete(userID, writingID string) error {
	delete(f.likes, likeKey(userID, writingID))
	return nil
}
