package payload

import "brainfuel/internal/domain"

// QuizSchema requires at least one question, exactly four options per
// question and a correct index that points at one of them.
var QuizSchema = &Schema{
	Name: "quiz",
	Definition: `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["question", "options", "correct", "explanation"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 4,
            "maxItems": 4,
            "items": {"type": "string", "minLength": 1}
          },
          "correct": {"type": "integer", "minimum": 0, "maximum": 3},
          "explanation": {"type": "string"}
        }
      }
    }
  }
}`,
}

// FactsSchema requires exactly five facts with every field present.
var FactsSchema = &Schema{
	Name: "facts",
	Definition: `{
  "type": "object",
  "required": ["facts"],
  "properties": {
    "facts": {
      "type": "array",
      "minItems": 5,
      "maxItems": 5,
      "items": {
        "type": "object",
        "required": ["title", "content", "category", "emoji"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "content": {"type": "string", "minLength": 1},
          "category": {"type": "string"},
          "emoji": {"type": "string"}
        }
      }
    }
  }
}`,
}

// DecodeQuiz decodes a quiz embedded in generation output.
func DecodeQuiz(text string) (*domain.Quiz, error) {
	var quiz domain.Quiz
	if err := Decode(text, QuizSchema, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// DecodeFacts decodes a fact batch embedded in generation output.
func DecodeFacts(text string) (*domain.FactBatch, error) {
	var batch domain.FactBatch
	if err := Decode(text, FactsSchema, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}
