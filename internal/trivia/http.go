package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/logging"
	httperr "github.com/triviahub/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints over the question bank.
type HTTPHandlers struct {
	store  Store
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers backed by the given store.
func NewHTTPHandlers(store Store, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		store:  store,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// ListCategories handles GET /categories.
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list categories")
		httperr.RespondInternalError(w)
		return
	}
	if len(categories) == 0 {
		httperr.RespondNotFound(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":    true,
		"categories": categoryMap(categories),
	})
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// Questions handles GET /questions (full listing) and POST /questions
// (case-insensitive substring search via searchTerm).
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	var filter QuestionFilter
	if r.Method == http.MethodPost {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.RespondBadRequest(w, "Invalid JSON payload")
			return
		}
		filter.Search = req.SearchTerm
	}
	h.respondQuestionPage(w, r, filter)
}

// QuestionsByCategory handles GET /categories/{category_id}/questions.
// A category with no questions (including an id that was never stored)
// yields an empty page and therefore a 404.
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("category_id"))
	if err != nil {
		httperr.RespondNotFound(w)
		return
	}
	h.respondQuestionPage(w, r, QuestionFilter{CategoryID: &categoryID})
}

// respondQuestionPage runs the shared listing flow: query, paginate, attach
// the category mapping, 404 when the requested page is empty.
func (h *HTTPHandlers) respondQuestionPage(w http.ResponseWriter, r *http.Request, filter QuestionFilter) {
	ctx := r.Context()

	selection, err := h.store.ListQuestions(ctx, filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list questions")
		httperr.RespondInternalError(w)
		return
	}

	questions := Paginate(pageParam(r), selection)
	if len(questions) == 0 {
		httperr.RespondNotFound(w)
		return
	}

	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list categories")
		httperr.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":          true,
		"questions":        questions,
		"categories":       categoryMap(categories),
		"total_questions":  len(selection),
		"current_category": nil,
	})
}

// DeleteQuestion handles DELETE /questions/{id}. Every lookup or delete
// failure is reported as a 404; callers cannot distinguish a missing id
// from a failed delete.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperr.RespondBadRequest(w, "Question Id needs to be an Integer")
		return
	}

	if err := h.store.DeleteQuestion(r.Context(), id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.logger.Error().Err(err).Int("question_id", id).Msg("failed to delete question")
		}
		httperr.RespondNotFound(w)
		return
	}

	writeJSON(w, map[string]any{"success": true})
}

// createQuestionRequest keeps category and difficulty raw so their JSON
// types can be checked independently, in the documented order.
type createQuestionRequest struct {
	Question   string          `json:"question"`
	Answer     string          `json:"answer"`
	Category   json.RawMessage `json:"category"`
	Difficulty json.RawMessage `json:"difficulty"`
}

// CreateQuestion handles POST /questions/create. Validation runs fully
// before any insert; the check order determines which message a request
// with multiple problems receives.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.RespondBadRequest(w, "Invalid JSON payload")
		return
	}

	if utf8.RuneCountInString(req.Question) < 10 {
		httperr.RespondBadRequest(w, "Question needs to be at least 10 characters long")
		return
	}
	if len(req.Answer) < 1 {
		httperr.RespondBadRequest(w, "Answer needs to be at least one character")
		return
	}

	var category string
	if err := json.Unmarshal(req.Category, &category); err != nil {
		httperr.RespondBadRequest(w, "Category needs to be a String")
		return
	}

	// A JSON float such as 3.0 fails here as well.
	var difficulty int
	if err := json.Unmarshal(req.Difficulty, &difficulty); err != nil {
		httperr.RespondBadRequest(w, "Difficulty needs to be an Integer")
		return
	}

	categoryID, err := strconv.Atoi(category)
	if err != nil {
		httperr.RespondBadRequest(w, "Category does not exist")
		return
	}
	if _, err := h.store.GetCategory(r.Context(), categoryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httperr.RespondBadRequest(w, "Category does not exist")
			return
		}
		h.logger.Error().Err(err).Int("category_id", categoryID).Msg("failed to fetch category")
		httperr.RespondInternalError(w)
		return
	}

	if difficulty < 1 || difficulty > 5 {
		httperr.RespondBadRequest(w, "Difficulty needs to be an Integer of 1 to 5")
		return
	}

	created, err := h.store.InsertQuestion(r.Context(), Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   categoryID,
		Difficulty: difficulty,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to insert question")
		httperr.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":  true,
		"question": created,
	})
}

type quizRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      struct {
		ID int `json:"id"`
	} `json:"quiz_category"`
}

// PlayQuiz handles POST /quizzes: one random question from the requested
// category (id 0 means all categories) that the client has not seen yet.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.RespondBadRequest(w, "Invalid JSON payload")
		return
	}

	var filter QuestionFilter
	if req.QuizCategory.ID != 0 {
		id := req.QuizCategory.ID
		filter.CategoryID = &id
	}

	candidates, err := h.store.ListQuestions(r.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list quiz candidates")
		httperr.RespondInternalError(w)
		return
	}
	if len(candidates) == 0 {
		httperr.RespondNotFound(w)
		return
	}

	question, err := PickUnseen(candidates, req.PreviousQuestions)
	if err != nil {
		httperr.RespondUnprocessable(w, "No more questions to display")
		return
	}
	requestLogger := logging.FromContext(r.Context())
	requestLogger.Debug().
		Int("question_id", question.ID).
		Int("excluded", len(req.PreviousQuestions)).
		Msg("quiz question selected")

	writeJSON(w, map[string]any{
		"success":  true,
		"question": question,
	})
}

// pageParam reads the 1-based page query parameter, falling back to 1 when
// absent or unparseable.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// categoryMap shapes categories as the id->type mapping the frontend
// expects; integer keys marshal as JSON strings.
func categoryMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
