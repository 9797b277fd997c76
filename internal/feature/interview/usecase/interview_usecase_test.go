package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"interview_backend/internal/feature/interview/domain/entity"
)

// mockCompleter is a mock implementation of the Completer interface.
type mockCompleter struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)
	calls        int
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.calls++
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}
	return "", errors.New("completion failed")
}

func TestInterviewUsecase_GenerateQuestions(t *testing.T) {
	const modelOutput = `[{"category":"Technical","question":"What is a goroutine?"},{"category":"Behavioral","question":"Tell me about a conflict you resolved."}]`

	t.Run("parses model output into questions", func(t *testing.T) {
		ai := &mockCompleter{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, "Go concurrency") {
					t.Errorf("prompt does not mention the topic: %q", prompt)
				}
				return modelOutput, nil
			},
		}

		uc := NewInterviewUsecase(ai)
		questions, err := uc.GenerateQuestions(context.Background(), "Go concurrency")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(questions))
		}
		if questions[0].Category != "Technical" {
			t.Errorf("expected category 'Technical', got %q", questions[0].Category)
		}
		if questions[1].Question != "Tell me about a conflict you resolved." {
			t.Errorf("unexpected question: %q", questions[1].Question)
		}
	})

	t.Run("strips markdown code fences", func(t *testing.T) {
		ai := &mockCompleter{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "```json\n" + modelOutput + "\n```", nil
			},
		}

		uc := NewInterviewUsecase(ai)
		questions, err := uc.GenerateQuestions(context.Background(), "Go concurrency")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(questions))
		}
	})

	t.Run("unparseable output falls back to the default set", func(t *testing.T) {
		tests := []struct {
			name   string
			output string
		}{
			{"plain prose", "Here are some questions for you: 1. What is Go?"},
			{"empty array", "[]"},
			{"truncated json", `[{"category":"Tech`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ai := &mockCompleter{
					CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
						return tt.output, nil
					},
				}

				uc := NewInterviewUsecase(ai)
				questions, err := uc.GenerateQuestions(context.Background(), "Go concurrency")

				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(questions) != len(fallbackQuestions) {
					t.Fatalf("expected %d fallback questions, got %d", len(fallbackQuestions), len(questions))
				}
				for i, q := range questions {
					if q != fallbackQuestions[i] {
						t.Errorf("question %d: expected fallback %+v, got %+v", i, fallbackQuestions[i], q)
					}
				}
			})
		}
	})

	t.Run("fallback is a copy, not the shared slice", func(t *testing.T) {
		ai := &mockCompleter{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "not json", nil
			},
		}

		uc := NewInterviewUsecase(ai)
		questions, err := uc.GenerateQuestions(context.Background(), "Go concurrency")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		questions[0] = entity.Question{Category: "mutated", Question: "mutated"}
		if fallbackQuestions[0].Category == "mutated" {
			t.Error("mutating the result must not affect the fallback set")
		}
	})

	t.Run("empty topic is rejected without an upstream call", func(t *testing.T) {
		ai := &mockCompleter{}

		uc := NewInterviewUsecase(ai)
		_, err := uc.GenerateQuestions(context.Background(), "")

		if err == nil {
			t.Fatal("expected error but got nil")
		}
		if ai.calls != 0 {
			t.Errorf("expected no upstream calls, got %d", ai.calls)
		}
	})

	t.Run("oversized topic is rejected", func(t *testing.T) {
		uc := NewInterviewUsecase(&mockCompleter{})
		_, err := uc.GenerateQuestions(context.Background(), strings.Repeat("a", MaxTopicLength+1))

		if err == nil {
			t.Fatal("expected error but got nil")
		}
	})

	t.Run("upstream failure is returned, not swallowed by the fallback", func(t *testing.T) {
		expectedErr := errors.New("gemini API request failed")
		ai := &mockCompleter{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", expectedErr
			},
		}

		uc := NewInterviewUsecase(ai)
		_, err := uc.GenerateQuestions(context.Background(), "Go concurrency")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected wrapped upstream error, got %v", err)
		}
	})
}

func TestInterviewUsecase_GenerateFeedback(t *testing.T) {
	t.Run("builds the prompt from question and answer", func(t *testing.T) {
		ai := &mockCompleter{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, "What is a goroutine?") {
					t.Errorf("prompt missing the question: %q", prompt)
				}
				if !strings.Contains(prompt, "A lightweight thread.") {
					t.Errorf("prompt missing the answer: %q", prompt)
				}
				return "Good, but mention the scheduler.", nil
			},
		}

		uc := NewInterviewUsecase(ai)
		feedback, err := uc.GenerateFeedback(context.Background(), "What is a goroutine?", "A lightweight thread.")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if feedback != "Good, but mention the scheduler." {
			t.Errorf("unexpected feedback: %q", feedback)
		}
	})

	t.Run("missing fields are rejected without an upstream call", func(t *testing.T) {
		tests := []struct {
			name     string
			question string
			answer   string
		}{
			{"missing question", "", "an answer"},
			{"missing answer", "a question", ""},
			{"both missing", "", ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ai := &mockCompleter{}
				uc := NewInterviewUsecase(ai)

				_, err := uc.GenerateFeedback(context.Background(), tt.question, tt.answer)

				if err == nil {
					t.Fatal("expected error but got nil")
				}
				if ai.calls != 0 {
					t.Errorf("expected no upstream calls, got %d", ai.calls)
				}
			})
		}
	})

	t.Run("upstream failure is propagated", func(t *testing.T) {
		expectedErr := errors.New("completion failed")
		ai := &mockCompleter{
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", expectedErr
			},
		}

		uc := NewInterviewUsecase(ai)
		_, err := uc.GenerateFeedback(context.Background(), "q", "a")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected wrapped upstream error, got %v", err)
		}
	})
}
