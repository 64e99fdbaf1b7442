package service

import (
	"context"

	"gatehouse/internal/domain/entity"
)

// JokeProvider serves the protected resource collection.
type JokeProvider interface {
	ListJokes(ctx context.Context) ([]entity.Joke, error)
}
