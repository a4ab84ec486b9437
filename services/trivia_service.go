package services

import (
	"carehub/pkg/trivia"
	"context"
	"fmt"
)

// TriviaService proxies the trivia API
type TriviaService struct {
	client TriviaClient
}

func NewTriviaService(client TriviaClient) *TriviaService {
	return &TriviaService{client: client}
}

// Questions validates the query locally so bad input is a 400 rather than an upstream failure
func (ts *TriviaService) Questions(ctx context.Context, q trivia.Query) ([]trivia.Question, error) {
	if q.Amount == 0 {
		q.Amount = trivia.DefaultAmount
	}
	if q.Amount < trivia.MinAmount || q.Amount > trivia.MaxAmount {
		return nil, fmt.Errorf("%w: amount must be between %d and %d", ErrInvalidInput, trivia.MinAmount, trivia.MaxAmount)
	}
	if q.Category < 0 {
		return nil, fmt.Errorf("%w: category must be a positive number", ErrInvalidInput)
	}
	switch q.Difficulty {
	case "", "easy", "medium", "hard":
	default:
		return nil, fmt.Errorf("%w: difficulty must be easy, medium or hard", ErrInvalidInput)
	}

	questions, err := ts.client.Questions(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return questions, nil
}
