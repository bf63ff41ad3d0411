package questions

import (
	"fmt"
	"strings"
)

const generateSystemPrompt = `You are an examiner writing practice questions for exam and placement preparation.

Rules:
- Generate questions strictly about the given topic at the given difficulty.
- Every question must be self-contained: no references to "the above" or external figures.
- Use plain text. No LaTeX, no markdown formatting inside question text.
- For multiple choice, provide exactly 4 options labeled A-D where exactly one is correct. Distractors should reflect common misconceptions, not random values.
- For written questions, the model answer must be complete enough to earn full marks and the keywords must be terms a strong answer genuinely needs.
- When syllabus material is provided, stay inside it; do not test content it does not cover.
- Do not repeat any question from the "already generated" list.`

const evaluateSystemPrompt = `You are an examiner grading a written answer against a model answer and keyword list.

Rules:
- Score is the fraction of available credit earned, between 0 and 1.
- Credit understanding and correct reasoning, not phrasing that matches the model answer word for word.
- An answer that misses most key points scores below 0.5 even if well written.
- Feedback must be specific and actionable. Name what was missing or wrong.
- Strengths and improvements are short bullet-style phrases, not paragraphs.`

// buildGenerateMessage constructs the user message for a generation batch.
func buildGenerateMessage(input GenerateInput, questionType string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.TopicName)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Question type: %s\n", questionType)
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)

	if input.SyllabusContext != "" {
		b.WriteString("\nSyllabus material:\n")
		b.WriteString(input.SyllabusContext)
		b.WriteString("\n")
	}

	b.WriteString("\nAlready generated for this topic:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildEvaluateMessage constructs the user message for grading one answer.
func buildEvaluateMessage(questionText, modelAnswer string, keywords []string, answer string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question:\n%s\n", questionText)
	fmt.Fprintf(&b, "\nModel answer:\n%s\n", modelAnswer)
	if len(keywords) > 0 {
		fmt.Fprintf(&b, "\nKey terms expected: %s\n", strings.Join(keywords, ", "))
	}
	fmt.Fprintf(&b, "\nStudent answer:\n%s\n", answer)

	return b.String()
}

// buildDedup formats prior questions for the prompt, keeping only the
// most recent N.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
