package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "missing required field title", (&ValidationError{Field: "title"}).Error())
	assert.Equal(t, "no book exists", (&NotFoundError{Id: "x"}).Error())
}

func TestErrorMatchingThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", &ValidationError{Field: "title"})
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))

	wrapped = fmt.Errorf("get: %w", &NotFoundError{Id: "x"})
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
}

func TestBookViews(t *testing.T) {
	book := &Book{Id: "1", Title: "Dune", Comments: []string{"a", "b"}}

	assert.Equal(t, BookSummary{Id: "1", Title: "Dune", CommentCount: 2}, book.Summary())
	assert.Equal(t, CreatedBook{Id: "1", Title: "Dune"}, book.Created())

	clone := book.Clone()
	clone.Comments[0] = "changed"
	assert.Equal(t, "a", book.Comments[0])
}
