package generate

import "fmt"

// defaultLanguage keys the prompt tables when the detected language has no
// localized template.
const defaultLanguage = "en"

var questionPrompts = map[string]string{
	"en": `You are an expert educator creating multiple choice questions based on the provided transcript content. Your goal is to create questions that test understanding of the key concepts, facts, and ideas presented in the material.

INSTRUCTIONS:
1. Analyze the transcript content carefully
2. Identify the main topics, key concepts, and important facts
3. Create 10-12 multiple choice questions that test understanding of this content
4. Questions should be educational and help students learn the material
5. Focus on comprehension, analysis, and application of the concepts presented
6. Make questions challenging but fair
7. Include a mix of difficulty levels (easy, medium, hard)
8. Only reference specific cultural contexts if they are actually mentioned in the transcript

Return ONLY this JSON format:
{
  "questions": [
    {
      "question": "Clear, well-formed question based on transcript content?",
      "options": ["A) Option 1", "B) Option 2", "C) Option 3", "D) Option 4"],
      "correct_answer": "A",
      "explanation": "Brief explanation of why this answer is correct",
      "subject": "Subject area based on transcript content",
      "difficulty": "easy/medium/hard",
      "topic": "Specific topic from transcript this question covers"
    }
  ]
}`,

	"hi": `आप एक विशेषज्ञ शिक्षक हैं जो दिए गए ट्रांसक्रिप्ट की सामग्री के आधार पर बहुविकल्पीय प्रश्न बना रहे हैं। आपका लक्ष्य ऐसे प्रश्न बनाना है जो सामग्री की मुख्य अवधारणाओं की समझ का परीक्षण करें।

निर्देश:
- ट्रांसक्रिप्ट की सामग्री का सावधानीपूर्वक विश्लेषण करें
- मुख्य विषयों और अवधारणाओं को पहचानें
- 10-12 बहुविकल्पीय प्रश्न बनाएं जो इस सामग्री की समझ का परीक्षण करें
- प्रश्न शैक्षणिक होने चाहिए और छात्रों को सीखने में मदद करने वाले हों

केवल JSON में उत्तर दें।`,

	"ne": `तपाईं एक विशेषज्ञ शिक्षक हुनुहुन्छ जसले दिइएको ट्रान्सक्रिप्टको सामग्री आधारमा बहुविकल्पीय प्रश्नहरू बनाइरहनुभएको छ। तपाईंको लक्ष्य यस्ता प्रश्नहरू बनाउनु हो जसले सामग्रीको मुख्य अवधारणाहरूको बुझाइको परीक्षण गर्छ।

निर्देशनहरू:
- ट्रान्सक्रिप्टको सामग्रीको सावधानीपूर्वक विश्लेषण गर्नुहोस्
- मुख्य विषयहरू र अवधारणाहरू पहिचान गर्नुहोस्
- 10-12 बहुविकल्पीय प्रश्नहरू बनाउनुहोस् जसले यस सामग्रीको बुझाइको परीक्षण गर्छ
- प्रश्नहरू शैक्षिक हुनुपर्छ र विद्यार्थीहरूलाई सिक्न मद्दत गर्नुपर्छ

JSON मा मात्र जवाफ दिनुहोस्।`,
}

var flashcardPrompts = map[string]string{
	"en": `You are an expert educator creating study flashcards based on the provided transcript content. Your goal is to create flashcards that help students learn and remember the key concepts, facts, and ideas presented in the material.

INSTRUCTIONS:
1. Analyze the transcript content carefully
2. Identify important terms, concepts, definitions, processes, and facts
3. Create 12-15 flashcards that help students study this material effectively
4. Include a variety of flashcard types: definitions, explanations, examples, processes
5. Focus on the most important and useful information from the transcript
6. Only reference specific contexts if they are mentioned in the transcript

Return ONLY this JSON format:
{
  "flashcards": [
    {
      "front": "Question, term, or concept from the transcript",
      "back": "Detailed answer, definition, or explanation",
      "subject": "Subject area based on transcript content",
      "difficulty": "easy/medium/hard",
      "category": "Definition/Explanation/Process/Fact/Example",
      "topic": "Specific topic from transcript this flashcard covers"
    }
  ]
}`,

	"hi": `आप एक विशेषज्ञ शिक्षक हैं जो दिए गए ट्रांसक्रिप्ट की सामग्री के आधार पर अध्ययन फ्लैशकार्ड बना रहे हैं। आपका लक्ष्य ऐसे फ्लैशकार्ड बनाना है जो छात्रों को मुख्य अवधारणाओं को सीखने और याद रखने में मदद करें।

निर्देश:
- ट्रांसक्रिप्ट की सामग्री का सावधानीपूर्वक विश्लेषण करें
- महत्वपूर्ण शब्दों, अवधारणाओं और तथ्यों को पहचानें
- 12-15 फ्लैशकार्ड बनाएं जो इस सामग्री को प्रभावी रूप से सिखाने में मदद करें
- विभिन्न प्रकार के फ्लैशकार्ड शामिल करें: परिभाषाएं, व्याख्याएं, उदाहरण

केवल JSON में उत्तर दें।`,

	"ne": `तपाईं एक विशेषज्ञ शिक्षक हुनुहुन्छ जसले दिइएको ट्रान्सक्रिप्टको सामग्री आधारमा अध्ययन फ्ल्यासकार्डहरू बनाइरहनुभएको छ। तपाईंको लक्ष्य यस्ता फ्ल्यासकार्डहरू बनाउनु हो जसले विद्यार्थीहरूलाई मुख्य अवधारणाहरू सिक्न र सम्झन मद्दत गर्छ।

निर्देशनहरू:
- ट्रान्सक्रिप्टको सामग्रीको सावधानीपूर्वक विश्लेषण गर्नुहोस्
- महत्वपूर्ण शब्दहरू, अवधारणाहरू र तथ्यहरू पहिचान गर्नुहोस्
- 12-15 फ्ल्यासकार्डहरू बनाउनुहोस् जसले यस सामग्रीलाई प्रभावकारी रूपमा सिकाउन मद्दत गर्छ
- विभिन्न प्रकारका फ्ल्यासकार्डहरू समावेश गर्नुहोस्: परिभाषाहरू, व्याख्याहरू, उदाहरणहरू

JSON मा मात्र जवाफ दिनुहोस्।`,
}

// promptFor selects the localized template for a detected language, falling
// back to the default template for unsupported languages.
func promptFor(prompts map[string]string, language string) string {
	if prompt, ok := prompts[language]; ok {
		return prompt
	}
	return prompts[defaultLanguage]
}

// questionSystemPrompt embeds the target question count into the system
// instruction for one generation request.
func questionSystemPrompt(count int) string {
	return fmt.Sprintf(`You are an expert educator creating multiple choice questions based on transcript content. Your goal is to create %d high-quality educational questions that test understanding of the material presented.

IMPORTANT GUIDELINES:
1. Focus on the actual content of the transcript
2. Create questions that help students understand the key concepts
3. Use appropriate difficulty levels (mix of easy, medium, hard)
4. Only reference specific contexts if they appear in the transcript
5. Make questions educational and meaningful
6. Avoid forcing unrelated cultural or geographical references
7. Focus on comprehension, analysis, and application

Return ONLY valid JSON format with no extra text.`, count)
}

// flashcardSystemPrompt embeds the target flashcard count into the system
// instruction for one generation request.
func flashcardSystemPrompt(count int) string {
	return fmt.Sprintf(`You are an expert educator creating study flashcards based on transcript content. Your goal is to create %d high-quality flashcards that help students learn the material presented.

IMPORTANT GUIDELINES:
1. Focus on the actual content of the transcript
2. Create flashcards that help students understand key concepts
3. Include various types: definitions, explanations, processes, facts
4. Only reference specific contexts if they appear in the transcript
5. Make flashcards educational and practical for studying
6. Avoid forcing unrelated cultural or geographical references
7. Focus on the most important information from the transcript

Return ONLY valid JSON format with no extra text.`, count)
}
