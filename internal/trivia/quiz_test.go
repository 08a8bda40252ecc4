package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func quizCandidates(ids ...int) []Question {
	out := make([]Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	}
	return out
}

func TestPickUnseenNeverRepeats(t *testing.T) {
	candidates := quizCandidates(1, 2, 3, 4, 5)
	previous := []int{2, 4}

	for i := 0; i < 50; i++ {
		q, err := PickUnseen(candidates, previous)
		assert.NoError(t, err)
		assert.NotContains(t, previous, q.ID)
	}
}

func TestPickUnseenSingleRemaining(t *testing.T) {
	q, err := PickUnseen(quizCandidates(1, 2, 3), []int{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, 3, q.ID)
}

func TestPickUnseenExhausted(t *testing.T) {
	_, err := PickUnseen(quizCandidates(1, 2, 3), []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrQuestionsExhausted)
}

func TestPickUnseenEmptyCandidates(t *testing.T) {
	_, err := PickUnseen(nil, nil)
	assert.ErrorIs(t, err, ErrQuestionsExhausted)
}

func TestPickUnseenIgnoresUnknownPreviousIDs(t *testing.T) {
	q, err := PickUnseen(quizCandidates(7), []int{99, 100})
	assert.NoError(t, err)
	assert.Equal(t, 7, q.ID)
}

func TestPickUnseenEventuallyCoversAllCandidates(t *testing.T) {
	candidates := quizCandidates(1, 2, 3)
	picked := map[int]bool{}
	for i := 0; i < 200; i++ {
		q, err := PickUnseen(candidates, nil)
		assert.NoError(t, err)
		picked[q.ID] = true
	}
	assert.Len(t, picked, 3, "every candidate should be reachable")
}
