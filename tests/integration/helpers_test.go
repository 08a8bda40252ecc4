//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/db/repository"
	"github.com/triviahub/trivia-api/internal/server"
	"github.com/triviahub/trivia-api/internal/trivia"
)

// startAPI boots the full handler stack over an in-memory SQLite store,
// seeded with two categories and three science questions.
func startAPI(t *testing.T) (baseURL string, store *repository.SQLiteStore) {
	t.Helper()

	store, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	science, err := store.InsertCategory(ctx, "Science")
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if _, err := store.InsertCategory(ctx, "Art"); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	seed := []trivia.Question{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: science.ID, Difficulty: 4},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: science.ID, Difficulty: 4},
		{Question: "Which planet is closest to the sun?", Answer: "Mercury", Category: science.ID, Difficulty: 1},
	}
	for _, q := range seed {
		if _, err := store.InsertQuestion(ctx, q); err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}

	cfg := &config.App{
		Name: "trivia-api",
		Env:  "test",
		CORS: config.CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         3600,
		},
	}

	handlers := trivia.NewHTTPHandlers(store, zerolog.Nop())
	srv := httptest.NewServer(server.Handler(cfg, zerolog.Nop(), handlers))
	t.Cleanup(srv.Close)

	return srv.URL, store
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func deleteRequest(t *testing.T, url string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		t.Fatalf("build DELETE request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s failed: %v", url, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	return out
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("expected status %d, got %d", want, resp.StatusCode)
	}
}

func questionID(t *testing.T, body map[string]any) int {
	t.Helper()
	question, ok := body["question"].(map[string]any)
	if !ok {
		t.Fatalf("response has no question object: %v", body)
	}
	id, ok := question["id"].(float64)
	if !ok {
		t.Fatalf("question has no numeric id: %v", question)
	}
	return int(id)
}

func apiURL(base, format string, args ...any) string {
	return base + fmt.Sprintf(format, args...)
}
