package service

import (
	"fmt"
	"strings"

	"brainfuel/internal/domain"
)

const fallbackTopic = "this topic"

var fallbackFacts = [domain.FactBatchSize]domain.Fact{
	{
		Title:    "Octopus Intelligence",
		Body:     "Octopuses have three hearts and blue blood! Two hearts pump blood to their gills, while the third pumps blood to the rest of their body. Their blue blood comes from a copper-based protein that carries oxygen more efficiently in cold water.",
		Category: "Marine Biology",
		Emoji:    "🐙",
	},
	{
		Title:    "Honey Never Spoils",
		Body:     "Archaeologists have found pots of honey in ancient Egyptian tombs that are over 3,000 years old and still perfectly edible! Honey's low moisture content and acidic pH create an environment where bacteria cannot survive.",
		Category: "Science",
		Emoji:    "🍯",
	},
	{
		Title:    "Tree Internet",
		Body:     "Trees in a forest communicate with each other through an underground network of fungi called the 'Wood Wide Web.' They share nutrients, water, and even warning signals about insect attacks through this natural internet!",
		Category: "Nature",
		Emoji:    "🌳",
	},
	{
		Title:    "Diamond Rain",
		Body:     "It literally rains diamonds on Neptune and Uranus! The extreme pressure and temperature in these planets' atmospheres compress carbon atoms into diamond crystals that fall like rain through the atmosphere.",
		Category: "Space",
		Emoji:    "💎",
	},
	{
		Title:    "Butterfly Memory",
		Body:     "Butterflies can remember things they learned as caterpillars! Even though they completely dissolve their body during metamorphosis, some memories remain intact through the transformation process.",
		Category: "Biology",
		Emoji:    "🦋",
	},
}

// FallbackFacts returns a fresh copy of the fixed fact batch served when
// generation fails.
func FallbackFacts() *domain.FactBatch {
	facts := make([]domain.Fact, len(fallbackFacts))
	copy(facts, fallbackFacts[:])
	return &domain.FactBatch{Facts: facts}
}

// FallbackQuiz returns the single-question quiz served when generation
// fails. A blank topic is replaced by "this topic".
func FallbackQuiz(topic string) *domain.Quiz {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = fallbackTopic
	}
	return &domain.Quiz{
		Questions: []domain.Question{
			{
				Prompt: fmt.Sprintf("What is the main concept behind %s?", topic),
				Options: []string{
					"A) It's a complex system with many parts",
					"B) It's a simple, single-purpose tool",
					"C) It doesn't really work in practice",
					"D) It's only used by experts",
				},
				CorrectIndex: 0,
				Rationale:    "Most topics involve interconnected systems and concepts working together.",
			},
		},
	}
}
