package trivia

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// Category is a question grouping seeded into the store.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a single trivia entry. IDs are assigned by the store on insert.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
