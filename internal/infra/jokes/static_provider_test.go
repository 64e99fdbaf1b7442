package jokes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_ListJokes(t *testing.T) {
	provider := NewStaticProvider()

	jokes, err := provider.ListJokes(context.Background())

	require.NoError(t, err)
	require.Len(t, jokes, 3)
	for _, joke := range jokes {
		assert.NotEmpty(t, joke.ID)
		assert.NotEmpty(t, joke.Joke)
	}
}

func TestStaticProvider_ReturnsCopy(t *testing.T) {
	provider := NewStaticProvider()

	first, err := provider.ListJokes(context.Background())
	require.NoError(t, err)
	first[0].Joke = "mutated"

	second, err := provider.ListJokes(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Joke)
}

func TestStaticProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticProvider().ListJokes(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
