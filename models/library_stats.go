package models

type LibraryStats struct {
	NumberOfBooks    int64 `json:"number_of_books"`
	NumberOfComments int64 `json:"number_of_comments"`
}
