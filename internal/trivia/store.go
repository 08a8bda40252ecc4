package trivia

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store implementations when a record is absent.
var ErrNotFound = errors.New("record not found")

// QuestionFilter narrows ListQuestions. A nil CategoryID selects every
// category; an empty Search disables text matching.
type QuestionFilter struct {
	CategoryID *int
	Search     string // case-insensitive substring match on question text
}

// Store is the persistence contract the handlers depend on. Any relational
// or embedded database satisfying it is substitutable.
type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int) (Category, error)
	ListQuestions(ctx context.Context, filter QuestionFilter) ([]Question, error)
	GetQuestion(ctx context.Context, id int) (Question, error)
	InsertQuestion(ctx context.Context, q Question) (Question, error)
	DeleteQuestion(ctx context.Context, id int) error
}
