package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/triviahub/trivia-api/internal/trivia"
)

// sqliteSchema mirrors db/migrations for the embedded store; applied on
// open so a fresh file (or :memory:) is immediately usable.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS questions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	question TEXT NOT NULL,
	answer TEXT NOT NULL,
	category INTEGER NOT NULL,
	difficulty INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_questions_category ON questions (category);
`

// SQLiteStore implements trivia.Store over an embedded SQLite database.
// It backs single-node deployments (STORE_DRIVER=sqlite) and the test
// suites, which open it at :memory:.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InsertCategory is not part of trivia.Store; categories are seeded rather
// than managed through the API. Used by seeding and tests.
func (s *SQLiteStore) InsertCategory(ctx context.Context, categoryType string) (trivia.Category, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO categories (type) VALUES (?)`, categoryType)
	if err != nil {
		return trivia.Category{}, fmt.Errorf("insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return trivia.Category{}, fmt.Errorf("category id: %w", err)
	}
	return trivia.Category{ID: int(id), Type: categoryType}, nil
}

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, type FROM categories ORDER BY id`)
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

func (s *SQLiteStore) GetCategory(ctx context.Context, id int) (trivia.Category, error) {
	var c trivia.Category
	err := s.db.QueryRowContext(ctx, `SELECT id, type FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return trivia.Category{}, trivia.ErrNotFound
	}
	if err != nil {
		return trivia.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}

// ListQuestions matches the Postgres store's semantics: LIKE is
// case-insensitive for ASCII in SQLite, standing in for ILIKE.
func (s *SQLiteStore) ListQuestions(ctx context.Context, filter trivia.QuestionFilter) ([]trivia.Question, error) {
	query := `SELECT id, question, answer, category, difficulty FROM questions`

	var (
		clauses []string
		args    []any
	)
	if filter.CategoryID != nil {
		clauses = append(clauses, "category = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.Search != "" {
		clauses = append(clauses, "question LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
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

func (s *SQLiteStore) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	var q trivia.Question
	err := s.db.QueryRowContext(ctx,
		`SELECT id, question, answer, category, difficulty FROM questions WHERE id = ?`, id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		return trivia.Question{}, trivia.ErrNotFound
	}
	if err != nil {
		return trivia.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

func (s *SQLiteStore) InsertQuestion(ctx context.Context, q trivia.Question) (trivia.Question, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)`,
		q.Question, q.Answer, q.Category, q.Difficulty)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return trivia.Question{}, fmt.Errorf("question id: %w", err)
	}
	q.ID = int(id)
	return q, nil
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if affected == 0 {
		return trivia.ErrNotFound
	}
	return nil
}
