package setup

import (
	"github.com/abhisek/quizdeck/internal/extract"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// documentReadyMsg is sent when document parsing finishes.
type documentReadyMsg struct {
	Doc *extract.Document
	Err error
}

// questionsReadyMsg is sent when question generation finishes.
type questionsReadyMsg struct {
	Questions []quiz.Question
	Err       error
}
