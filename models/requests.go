package models

type CreateBookRequest struct {
	Title string `json:"title" form:"title"`
}

type AddCommentRequest struct {
	Comment string `json:"comment" form:"comment"`
}
