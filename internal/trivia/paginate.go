package trivia

// Paginate returns the 1-based page of items, QuestionsPerPage per page,
// preserving input order. Pages before 1 or past the end come back empty.
func Paginate[T any](page int, items []T) []T {
	if page < 1 {
		return nil
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return nil
	}
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
