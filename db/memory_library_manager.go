package db

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"library/models"
)

// MemoryLibraryManager keeps books in process memory in insertion order.
// Data is lost on restart.
type MemoryLibraryManager struct {
	mu    sync.RWMutex
	order []string
	books map[string]*models.Book
	newId func() string
}

func NewMemoryLibrary() *MemoryLibraryManager {
	return &MemoryLibraryManager{
		books: make(map[string]*models.Book),
		newId: uuid.NewString,
	}
}

func (library *MemoryLibraryManager) ListBooks(_ context.Context) ([]models.BookSummary, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	summaries := make([]models.BookSummary, 0, len(library.order))
	for _, id := range library.order {
		summaries = append(summaries, library.books[id].Summary())
	}

	return summaries, nil
}

func (library *MemoryLibraryManager) CreateBook(_ context.Context, title string) (*models.Book, error) {
	if title == "" {
		return nil, &models.ValidationError{Field: "title"}
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	id := library.newId()
	for library.books[id] != nil {
		id = library.newId()
	}

	book := &models.Book{Id: id, Title: title, Comments: []string{}}
	library.books[id] = book
	library.order = append(library.order, id)

	return book.Clone(), nil
}

func (library *MemoryLibraryManager) GetBookById(_ context.Context, id string) (*models.Book, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	book, ok := library.books[id]
	if !ok {
		return nil, &models.NotFoundError{Id: id}
	}

	return book.Clone(), nil
}

func (library *MemoryLibraryManager) AddComment(_ context.Context, id, comment string) (*models.Book, error) {
	if comment == "" {
		return nil, &models.ValidationError{Field: "comment"}
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	book, ok := library.books[id]
	if !ok {
		return nil, &models.NotFoundError{Id: id}
	}

	book.Comments = append(book.Comments, comment)

	return book.Clone(), nil
}

func (library *MemoryLibraryManager) DeleteBookById(_ context.Context, id string) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	if _, ok := library.books[id]; !ok {
		return &models.NotFoundError{Id: id}
	}

	delete(library.books, id)
	for i, existing := range library.order {
		if existing == id {
			library.order = append(library.order[:i], library.order[i+1:]...)
			break
		}
	}

	return nil
}

func (library *MemoryLibraryManager) DeleteAllBooks(_ context.Context) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	library.books = make(map[string]*models.Book)
	library.order = nil

	return nil
}

func (library *MemoryLibraryManager) Stats(_ context.Context) (*models.LibraryStats, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	stats := &models.LibraryStats{NumberOfBooks: int64(len(library.books))}
	for _, book := range library.books {
		stats.NumberOfComments += int64(len(book.Comments))
	}

	return stats, nil
}
