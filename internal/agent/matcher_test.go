package agent

import (
	"context"
	"testing"

	"github.com/hireflow/screening/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_ParsesBarePercent(t *testing.T) {
	llm := &fakeCompleter{out: "76%"}
	m := NewMatcher(llm)

	got, err := m.Match(context.Background(), "jd summary", "cv summary")
	require.NoError(t, err)
	assert.Equal(t, 76, got)
	assert.Contains(t, llm.lastPrompt, "jd summary")
	assert.Contains(t, llm.lastPrompt, "cv summary")
}

func TestMatch_ToleratesChattyOutput(t *testing.T) {
	m := NewMatcher(&fakeCompleter{out: "Fit Score: 82 % based on alignment"})

	got, err := m.Match(context.Background(), "jd", "cv")
	require.NoError(t, err)
	assert.Equal(t, 82, got)
}

func TestMatch_NoPercentIsNotZero(t *testing.T) {
	m := NewMatcher(&fakeCompleter{out: "I cannot score this resume."})

	_, err := m.Match(context.Background(), "jd", "cv")
	assert.ErrorIs(t, err, score.ErrScoreNotFound)
}

func TestMatch_TransportError(t *testing.T) {
	m := NewMatcher(&fakeCompleter{err: errTransport})

	_, err := m.Match(context.Background(), "jd", "cv")
	require.Error(t, err)
	assert.NotErrorIs(t, err, score.ErrScoreNotFound)
}
