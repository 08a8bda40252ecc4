package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/triviahub/trivia-api/internal/trivia"
)

// PostgresStore implements trivia.Store over a pgx connection pool. This is
// the production store; schema lives in db/migrations.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *PostgresStore) GetCategory(ctx context.Context, id int) (trivia.Category, error) {
	var c trivia.Category
	err := s.pool.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return trivia.Category{}, trivia.ErrNotFound
	}
	if err != nil {
		return trivia.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}

// ListQuestions returns questions ordered by id so pagination stays stable
// across requests.
func (s *PostgresStore) ListQuestions(ctx context.Context, filter trivia.QuestionFilter) ([]trivia.Question, error) {
	query := `SELECT id, question, answer, category, difficulty FROM questions`

	var (
		clauses []string
		args    []any
	)
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf("question ILIKE $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *PostgresStore) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	var q trivia.Question
	err := s.pool.QueryRow(ctx,
		`SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`, id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		return trivia.Question{}, trivia.ErrNotFound
	}
	if err != nil {
		return trivia.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

func (s *PostgresStore) InsertQuestion(ctx context.Context, q trivia.Question) (trivia.Question, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		q.Question, q.Answer, q.Category, q.Difficulty).Scan(&q.ID)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

func (s *PostgresStore) DeleteQuestion(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}
