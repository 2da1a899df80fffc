package generate

import "studypipe/internal/domain/study"

const (
	questionFallbackNotice  = "Unable to generate comprehensive questions from the provided transcript. The content might be too short or unclear. Please try with clearer, more substantial educational content."
	flashcardFallbackNotice = "Unable to generate comprehensive flashcards from the provided transcript. The content might be too short or unclear. Please try with clearer, more substantial educational content."
)

// fallbackQuestions returns the fixed question set served when every
// generation strategy fails. Never empty.
func fallbackQuestions() []study.Question {
	return []study.Question{
		{
			Question:      "Based on the content presented, which approach would be most effective for understanding this topic?",
			Options:       []string{"A) Memorizing all details", "B) Understanding key concepts and their relationships", "C) Focusing only on specific examples", "D) Skipping complex parts"},
			CorrectAnswer: "B",
			Explanation:   "Understanding key concepts and their relationships provides a solid foundation for learning any subject matter.",
			Subject:       "General Learning",
			Difficulty:    "easy",
			Topic:         "Learning strategies",
		},
		{
			Question:      "When analyzing complex information, what is the most important first step?",
			Options:       []string{"A) Jumping to conclusions", "B) Identifying the main ideas and themes", "C) Memorizing every detail", "D) Comparing with unrelated topics"},
			CorrectAnswer: "B",
			Explanation:   "Identifying main ideas and themes helps organize information and provides a framework for deeper understanding.",
			Subject:       "Critical Thinking",
			Difficulty:    "medium",
			Topic:         "Analysis techniques",
		},
	}
}

// fallbackFlashcards returns the fixed flashcard set served when every
// generation strategy fails. Never empty.
func fallbackFlashcards() []study.Flashcard {
	return []study.Flashcard{
		{
			Front:      "What is the most effective approach to learning new information?",
			Back:       "Active engagement with the material, connecting new concepts to existing knowledge, and regular review and practice. This approach helps build long-term understanding rather than temporary memorization.",
			Subject:    "Learning Strategies",
			Difficulty: "medium",
			Category:   "Explanation",
			Topic:      "Effective learning methods",
		},
		{
			Front:      "Why is understanding concepts better than memorizing facts?",
			Back:       "Understanding concepts allows you to apply knowledge in different situations, solve new problems, and build connections between ideas. Memorization only provides temporary recall without deeper comprehension.",
			Subject:    "Educational Psychology",
			Difficulty: "medium",
			Category:   "Explanation",
			Topic:      "Learning vs. memorization",
		},
		{
			Front:      "What should you do when encountering difficult material?",
			Back:       "Break it down into smaller parts, identify key concepts, look for patterns and relationships, ask questions, and connect it to what you already know. Seek help when needed and practice regularly.",
			Subject:    "Study Skills",
			Difficulty: "easy",
			Category:   "Process",
			Topic:      "Handling difficult content",
		},
	}
}
