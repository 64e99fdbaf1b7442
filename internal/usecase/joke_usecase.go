package usecase

import (
	"context"

	"gatehouse/internal/domain/entity"
)

// JokeUsecase reads the protected resource collection on behalf of an authenticated caller.
type JokeUsecase interface {
	ListJokes(ctx context.Context) ([]entity.Joke, error)
}
