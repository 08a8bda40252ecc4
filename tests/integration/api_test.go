//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"
)

func TestCategoryListing(t *testing.T) {
	baseURL, _ := startAPI(t)

	resp, err := http.Get(baseURL + "/categories")
	if err != nil {
		t.Fatalf("GET /categories failed: %v", err)
	}
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	body := decodeJSON(t, resp)
	categories, ok := body["categories"].(map[string]any)
	if !ok {
		t.Fatalf("categories mapping missing: %v", body)
	}
	if categories["1"] != "Science" || categories["2"] != "Art" {
		t.Fatalf("unexpected category mapping: %v", categories)
	}
}

func TestQuestionLifecycle(t *testing.T) {
	baseURL, _ := startAPI(t)

	// Create.
	resp := postJSON(t, baseURL+"/questions/create", map[string]any{
		"question":   "Which planet has the most moons?",
		"answer":     "Saturn",
		"category":   "1",
		"difficulty": 2,
	})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	createdID := questionID(t, decodeJSON(t, resp))

	// It shows up in the listing with the right total.
	listResp, err := http.Get(baseURL + "/questions")
	if err != nil {
		t.Fatalf("GET /questions failed: %v", err)
	}
	defer listResp.Body.Close()
	expectStatus(t, listResp, http.StatusOK)
	listBody := decodeJSON(t, listResp)
	if total := listBody["total_questions"].(float64); total != 4 {
		t.Fatalf("expected 4 questions after create, got %v", total)
	}

	// Search finds it case-insensitively.
	searchResp := postJSON(t, baseURL+"/questions", map[string]string{"searchTerm": "MOONS"})
	defer searchResp.Body.Close()
	expectStatus(t, searchResp, http.StatusOK)
	searchBody := decodeJSON(t, searchResp)
	if total := searchBody["total_questions"].(float64); total != 1 {
		t.Fatalf("expected 1 search match, got %v", total)
	}

	// Delete it; the second delete finds nothing.
	delResp := deleteRequest(t, apiURL(baseURL, "/questions/%d", createdID))
	defer delResp.Body.Close()
	expectStatus(t, delResp, http.StatusOK)

	again := deleteRequest(t, apiURL(baseURL, "/questions/%d", createdID))
	defer again.Body.Close()
	expectStatus(t, again, http.StatusNotFound)
}

func TestCreateQuestionValidationMessages(t *testing.T) {
	baseURL, _ := startAPI(t)

	resp := postJSON(t, baseURL+"/questions/create", map[string]any{
		"question":   "A question long enough to pass",
		"answer":     "yes",
		"category":   "1",
		"difficulty": 9,
	})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusBadRequest)

	body := decodeJSON(t, resp)
	if body["message"] != "Difficulty needs to be an Integer of 1 to 5" {
		t.Fatalf("unexpected validation message: %v", body["message"])
	}
	if body["error"].(float64) != 400 {
		t.Fatalf("error field should repeat the status code, got %v", body["error"])
	}
}

func TestQuestionsByCategory(t *testing.T) {
	baseURL, _ := startAPI(t)

	resp, err := http.Get(baseURL + "/categories/1/questions")
	if err != nil {
		t.Fatalf("GET /categories/1/questions failed: %v", err)
	}
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	body := decodeJSON(t, resp)
	if total := body["total_questions"].(float64); total != 3 {
		t.Fatalf("expected 3 science questions, got %v", total)
	}

	// A category nobody stored yields an empty page.
	missing, err := http.Get(baseURL + "/categories/9999/questions")
	if err != nil {
		t.Fatalf("GET /categories/9999/questions failed: %v", err)
	}
	defer missing.Body.Close()
	expectStatus(t, missing, http.StatusNotFound)
}

// TestQuizRound plays a full round: every question comes back exactly once,
// then the endpoint reports exhaustion.
func TestQuizRound(t *testing.T) {
	baseURL, _ := startAPI(t)

	var previous []int
	seen := map[int]bool{}

	for i := 0; i < 3; i++ {
		resp := postJSON(t, baseURL+"/quizzes", map[string]any{
			"quiz_category":      map[string]any{"id": 1},
			"previous_questions": previous,
		})
		expectStatus(t, resp, http.StatusOK)
		id := questionID(t, decodeJSON(t, resp))
		resp.Body.Close()

		if seen[id] {
			t.Fatalf("question %d served twice in one round", id)
		}
		seen[id] = true
		previous = append(previous, id)
	}

	resp := postJSON(t, baseURL+"/quizzes", map[string]any{
		"quiz_category":      map[string]any{"id": 1},
		"previous_questions": previous,
	})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusUnprocessableEntity)

	body := decodeJSON(t, resp)
	if body["message"] != "No more questions to display" {
		t.Fatalf("unexpected exhaustion message: %v", body["message"])
	}
}

func TestQuizEmptyCategory(t *testing.T) {
	baseURL, _ := startAPI(t)

	resp := postJSON(t, baseURL+"/quizzes", map[string]any{
		"quiz_category":      map[string]any{"id": 777},
		"previous_questions": []int{},
	})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusNotFound)
}

func TestCORSPreflightFromBrowser(t *testing.T) {
	baseURL, _ := startAPI(t)

	req, err := http.NewRequest(http.MethodOptions, baseURL+"/quizzes", nil)
	if err != nil {
		t.Fatalf("build OPTIONS request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS /quizzes failed: %v", err)
	}
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusNoContent)

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}
