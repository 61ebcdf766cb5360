package parallel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRacePicksFirstSuccess(t *testing.T) {
	tasks := map[string]func(ctx context.Context) (any, error){
		"prefer_empty": func(ctx context.Context) (any, error) {
			time.Sleep(5 * time.Millisecond)
			return "sat", nil
		},
		"depth": func(ctx context.Context) (any, error) {
			time.Sleep(50 * time.Millisecond)
			return "sat", nil
		},
	}

	winner, all, err := Race(context.Background(), tasks)
	require.NoError(t, err)
	assert.Equal(t, "prefer_empty", winner.Name)
	assert.LessOrEqual(t, 1, len(all))
}

func TestRaceAllFail(t *testing.T) {
	tasks := map[string]func(ctx context.Context) (any, error){
		"symbol_count": func(ctx context.Context) (any, error) {
			return nil, errors.New("budget exceeded")
		},
	}

	_, all, err := Race(context.Background(), tasks)
	require.Error(t, err)
	assert.Len(t, all, 1)
}
