// Package jokes serves the protected resource collection from a fixed in-process list.
package jokes

import (
	"context"
	"slices"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/service"
)

var catalog = []entity.Joke{
	{
		ID:   "0189hNRf2g",
		Joke: "I'm tired of following my dreams. I'm just going to ask them where they are going and meet up with them later.",
	},
	{
		ID:   "08EQZ8EQukb",
		Joke: "Did you hear about the guy whose whole left side was cut off? He's all right now.",
	},
	{
		ID:   "08xHQCdx5Ed",
		Joke: "Why didn't the skeleton cross the road? Because he had no guts.",
	},
}

type staticProvider struct {
	jokes []entity.Joke
}

// NewStaticProvider returns a provider serving the built-in jokes.
func NewStaticProvider() service.JokeProvider {
	return &staticProvider{jokes: catalog}
}

// ListJokes returns a copy of the catalog so callers cannot mutate it.
func (p *staticProvider) ListJokes(ctx context.Context) ([]entity.Joke, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return slices.Clone(p.jokes), nil
}
