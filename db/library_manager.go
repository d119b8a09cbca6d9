package db

import (
	"context"

	"library/models"
)

// LibraryManager owns every book of the service. Implementations must be safe for
// concurrent use and must never leave a book partially mutated by a failed call.
type LibraryManager interface {
	ListBooks(ctx context.Context) ([]models.BookSummary, error)
	CreateBook(ctx context.Context, title string) (*models.Book, error)
	GetBookById(ctx context.Context, id string) (*models.Book, error)
	AddComment(ctx context.Context, id, comment string) (*models.Book, error)
	DeleteBookById(ctx context.Context, id string) error
	DeleteAllBooks(ctx context.Context) error
	Stats(ctx context.Context) (*models.LibraryStats, error)
}
