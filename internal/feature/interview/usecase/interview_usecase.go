// Package usecase implements the business logic for the interview feature.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"interview_backend/internal/feature/interview/domain/entity"
)

const (
	// questionsPromptTemplate asks the model for machine-readable questions.
	questionsPromptTemplate = `Generate three interview questions for the topic %q in JSON format as an array of objects. Each object should have two keys: 'category' and 'question'. For example: [{ "category": "Technical", "question": "Explain ..." }, ...]. Respond with the JSON array only.`

	// feedbackPromptTemplate frames the model as an interviewer reviewing an answer.
	feedbackPromptTemplate = "You are an AI interviewer providing constructive feedback on answers.\nInterview question: %s\nCandidate's response: %s\nProvide feedback."

	// MaxTopicLength is the maximum topic length in runes.
	MaxTopicLength = 200
)

// fallbackQuestions is returned when the model's output cannot be parsed,
// so the practice page always has something to show.
var fallbackQuestions = []entity.Question{
	{
		Category: "Technical",
		Question: "Explain the difference between let, const, and var in JavaScript.",
	},
	{
		Category: "Behavioral",
		Question: "Describe a time when you had to meet a tight deadline.",
	},
	{
		Category: "Problem Solving",
		Question: "How would you approach debugging a complex issue in production?",
	},
}

// Completer generates a text completion for a prompt.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Completer interface {
	// Complete sends the prompt to the model and returns the raw text response.
	Complete(ctx context.Context, prompt string) (string, error)
}

// interviewUsecase provides question generation and answer feedback.
type interviewUsecase struct {
	ai Completer
}

// NewInterviewUsecase creates a new interviewUsecase instance.
func NewInterviewUsecase(ai Completer) *interviewUsecase {
	return &interviewUsecase{ai: ai}
}

// GenerateQuestions produces a set of interview questions for the given topic.
// When the model returns something that is not the requested JSON array, the
// hardcoded fallback set is returned instead of an error.
func (u *interviewUsecase) GenerateQuestions(ctx context.Context, topic string) ([]entity.Question, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if utf8.RuneCountInString(topic) > MaxTopicLength {
		return nil, fmt.Errorf("topic exceeds maximum length of %d characters", MaxTopicLength)
	}

	prompt := fmt.Sprintf(questionsPromptTemplate, topic)
	raw, err := u.ai.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("question generation failed for %q: %w", topic, err)
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		slog.Warn("unparseable model output, returning fallback questions", "topic", topic, "error", err)
		out := make([]entity.Question, len(fallbackQuestions))
		copy(out, fallbackQuestions)
		return out, nil
	}
	return questions, nil
}

// GenerateFeedback produces interviewer feedback for a candidate's answer.
func (u *interviewUsecase) GenerateFeedback(ctx context.Context, question, answer string) (string, error) {
	if question == "" || answer == "" {
		return "", fmt.Errorf("question and answer are required")
	}

	prompt := fmt.Sprintf(feedbackPromptTemplate, question, answer)
	feedback, err := u.ai.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("feedback generation failed: %w", err)
	}
	return feedback, nil
}

// parseQuestions decodes the model output into a question slice.
// Models routinely wrap JSON in markdown code fences; those are stripped first.
func parseQuestions(raw string) ([]entity.Question, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var questions []entity.Question
	if err := json.Unmarshal([]byte(s), &questions); err != nil {
		return nil, fmt.Errorf("model output is not a JSON question array: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned an empty question array")
	}
	return questions, nil
}
