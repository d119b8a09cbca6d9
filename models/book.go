package models

type Book struct {
	Id       string   `json:"_id"`
	Title    string   `json:"title"`
	Comments []string `json:"comments"`
}

// BookSummary is the listing view of a book.
type BookSummary struct {
	Id           string `json:"_id"`
	Title        string `json:"title"`
	CommentCount int    `json:"commentcount"`
}

// CreatedBook is returned when a book is created. It carries no comments.
type CreatedBook struct {
	Id    string `json:"_id"`
	Title string `json:"title"`
}

func (book *Book) Summary() BookSummary {
	return BookSummary{Id: book.Id, Title: book.Title, CommentCount: len(book.Comments)}
}

func (book *Book) Created() CreatedBook {
	return CreatedBook{Id: book.Id, Title: book.Title}
}

// Clone returns a copy that shares no memory with the receiver.
func (book *Book) Clone() *Book {
	comments := make([]string, len(book.Comments))
	copy(comments, book.Comments)
	return &Book{Id: book.Id, Title: book.Title, Comments: comments}
}
