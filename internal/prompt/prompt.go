// Package prompt builds the natural-language prompts sent to the text
// generation service.
package prompt

import (
	"fmt"
	"strings"

	"brainfuel/internal/domain"
	"brainfuel/internal/util"
)

// SourceTextLimit is how many characters of an uploaded document are quoted
// into an explanation prompt.
const SourceTextLimit = 2000

var explanationTemplates = map[domain.Level]string{
	domain.LevelBasic:        `Explain "%s" like I'm 5 years old. Use simple words, fun analogies, and make it engaging. Keep it under %d words.`,
	domain.LevelIntermediate: `Explain "%s" like I'm 12 years old. Use clear language with some technical terms but explain them. Include examples. Keep it under %d words.`,
	domain.LevelAdvanced:     `Explain "%s" like I'm 18 years old. Use appropriate complexity, technical terms, and real-world applications. Keep it under %d words.`,
}

var quizGuidance = map[domain.Level]string{
	domain.LevelBasic:        "Very simple concepts with everyday examples",
	domain.LevelIntermediate: "Basic technical understanding",
	domain.LevelAdvanced:     "More complex reasoning and applications",
}

const quizTemplate = `Create a quiz about "%s" for someone at %s level.

Generate exactly 3 multiple choice questions with 4 options each (A, B, C, D).
Format as JSON with this structure:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["A) Option 1", "B) Option 2", "C) Option 3", "D) Option 4"],
      "correct": 0,
      "explanation": "Brief explanation of why this is correct"
    }
  ]
}

"correct" is the zero-based index of the right option.
Make questions appropriate for the level: %s.`

const dailyFactsPrompt = `Generate 5 fascinating, educational facts that would be perfect for a "Daily Brain Fuel" section. Each fact should be:
1. Surprising and interesting
2. Educational but accessible
3. About different topics (science, history, nature, technology, psychology, space, etc.)
4. Suitable for all ages
5. 2-3 sentences long
6. Use diverse and engaging topics

Format as JSON with this structure:
{
  "facts": [
    {
      "title": "Brief catchy title",
      "content": "The actual fact explanation",
      "category": "Science/History/Nature/Technology/etc",
      "emoji": "relevant emoji"
    }
  ]
}`

// Explanation builds the explanation prompt for topic at level. When
// sourceText is non-empty its first SourceTextLimit characters are quoted
// ahead of the level instruction.
func Explanation(topic string, level domain.Level, sourceText string) (string, error) {
	topic, err := normalizeTopic(topic)
	if err != nil {
		return "", err
	}
	tmpl, ok := explanationTemplates[level]
	if !ok {
		return "", domain.NewInvalidLevelError(string(level))
	}

	instruction := fmt.Sprintf(tmpl, topic, level.WordLimit())
	if sourceText == "" {
		return instruction, nil
	}
	excerpt := util.TruncateRunes(sourceText, SourceTextLimit)
	return fmt.Sprintf("Based on this document content: \"%s...\" %s", excerpt, instruction), nil
}

// Quiz builds the prompt asking for three four-option questions about topic.
func Quiz(topic string, level domain.Level) (string, error) {
	topic, err := normalizeTopic(topic)
	if err != nil {
		return "", err
	}
	guidance, ok := quizGuidance[level]
	if !ok {
		return "", domain.NewInvalidLevelError(string(level))
	}
	return fmt.Sprintf(quizTemplate, topic, level, guidance), nil
}

// DailyFacts returns the fixed prompt for a batch of five facts.
func DailyFacts() string {
	return dailyFactsPrompt
}

func normalizeTopic(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", domain.NewInvalidInputError("topic is required")
	}
	return topic, nil
}
