package domain

// ExplanationRequest is the input of the explanation generator.
type ExplanationRequest struct {
	Topic      string
	Level      string
	SourceText string
	UserID     string
}

// Explanation is free text, never empty.
type Explanation struct {
	Text string
}

// QuizOptionCount is the number of options each generated question carries.
const QuizOptionCount = 4

// Quiz is an ordered list of multiple-choice questions.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Question keeps the wire keys the web client reads: question, options,
// correct and explanation.
type Question struct {
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	Rationale    string   `json:"explanation"`
}

// FactBatchSize is the fixed number of facts in a batch.
const FactBatchSize = 5

type FactBatch struct {
	Facts []Fact `json:"facts"`
}

type Fact struct {
	Title    string `json:"title"`
	Body     string `json:"content"`
	Category string `json:"category"`
	Emoji    string `json:"emoji"`
}
