package study

import "strings"

// Question is a single multiple-choice question generated from a transcript.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Subject       string   `json:"subject,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Topic         string   `json:"topic,omitempty"`
}

// AnswerLabels are the only accepted correct_answer values.
var AnswerLabels = []string{"A", "B", "C", "D"}

// Valid reports whether the question satisfies the structural contract:
// exactly four options and a correct answer among the fixed labels.
func (q Question) Valid() bool {
	if strings.TrimSpace(q.Question) == "" || len(q.Options) != 4 {
		return false
	}
	for _, label := range AnswerLabels {
		if q.CorrectAnswer == label {
			return true
		}
	}
	return false
}

// Flashcard is a single study card generated from a transcript.
type Flashcard struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	Subject    string `json:"subject,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Category   string `json:"category,omitempty"`
	Topic      string `json:"topic,omitempty"`
}

// Valid reports whether front and back carry content after trimming.
func (f Flashcard) Valid() bool {
	return strings.TrimSpace(f.Front) != "" && strings.TrimSpace(f.Back) != ""
}
