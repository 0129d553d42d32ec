package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateWritingRequest struct {
	Title    string          `json:"title"`
	Content  string          `json:"content" binding:"required"`
	Category WritingCategory `json:"category" binding:"required,oneof=shayari writing feeling"`
	Author   string          `json:"author"`
}

// UpdateWritingRequest carries no binding tags on purpose: field-level
// validation runs in the service after the ownership check, so a caller
// editing someone else's writing sees 403, not 400.
type UpdateWritingRequest struct {
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Category WritingCategory `json:"category"`
	Author   string          `json:"author"`
}

type AddCommentRequest struct {
	Name string `json:"name" binding:"required"`
	Text string `json:"text" binding:"required"`
}

type LikeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}
