package generate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/quizdeck/internal/quiz"
)

const systemPrompt = `You are an expert educator creating multiple-choice questions (MCQs) from study material.

Rules:
- Each question must have exactly 4 options (a, b, c, d).
- Questions should cover different topics from the material.
- Each question must have a clear correct answer and a brief explanation.
- Identify the main topic for each question.
- All questions must be answerable from the provided material. Do not ask about information not in the material.
- Make distractors plausible; avoid obviously wrong options.
- Return only the JSON array, no markdown formatting.`

// buildUserMessage constructs the user message from the document text and
// quiz configuration, truncating the document to cfg.MaxDocChars.
func buildUserMessage(docText string, quizCfg quiz.Config, cfg Config) string {
	truncated := false
	if cfg.MaxDocChars > 0 && len(docText) > cfg.MaxDocChars {
		cut := cfg.MaxDocChars
		// Back up to a rune boundary so a multi-byte character is never
		// split mid-sequence.
		for cut > 0 && !utf8.RuneStart(docText[cut]) {
			cut--
		}
		docText = docText[:cut]
		truncated = true
	}

	var b strings.Builder

	b.WriteString("STUDY MATERIAL:\n")
	b.WriteString(docText)
	if truncated {
		b.WriteString("\n... (truncated)")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Generate exactly %d high-quality MCQs.\n", quizCfg.NumQuestions)
	fmt.Fprintf(&b, "Difficulty level: %s\n", difficultyLabel(quizCfg.Difficulty))

	return b.String()
}

// difficultyLabel renders the difficulty setting for the prompt.
func difficultyLabel(d quiz.Difficulty) string {
	if d == quiz.DifficultyMixed {
		return "Mix of easy, medium, and hard questions"
	}
	return string(d)
}
