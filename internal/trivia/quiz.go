package trivia

import (
	"errors"
	"math/rand/v2"
)

// ErrQuestionsExhausted signals that every candidate question has already
// been shown to the player.
var ErrQuestionsExhausted = errors.New("no more questions to display")

// PickUnseen drops every candidate whose id appears in previous and returns
// one of the remaining questions uniformly at random. The quiz holds no
// server-side state; the client accumulates previous across turns.
func PickUnseen(candidates []Question, previous []int) (Question, error) {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == 0 {
		return Question{}, ErrQuestionsExhausted
	}
	return remaining[rand.IntN(len(remaining))], nil
}
