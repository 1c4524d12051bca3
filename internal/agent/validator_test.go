package agent

import (
	"context"
	"testing"

	"github.com/hireflow/screening/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailedReport_Success(t *testing.T) {
	report := "| Go | Yes | used in project X |\nSkill Legitimacy Score: 80%\n**VALID**"
	v := NewValidator(&fakeCompleter{out: report})

	got := v.DetailedReport(context.Background(), "cv summary")
	assert.Equal(t, report, got)
}

func TestDetailedReport_TransportFailureReturnsTaggedString(t *testing.T) {
	v := NewValidator(&fakeCompleter{err: errTransport})

	got := v.DetailedReport(context.Background(), "cv summary")
	assert.Contains(t, got, "Error:")
}

func TestValidatorScore_Parses(t *testing.T) {
	v := NewValidator(&fakeCompleter{out: "83%"})

	got, err := v.Score(context.Background(), "cv summary")
	require.NoError(t, err)
	assert.Equal(t, 83, got)
}

func TestValidatorScore_ZeroIsLegitimate(t *testing.T) {
	v := NewValidator(&fakeCompleter{out: "0%"})

	got, err := v.Score(context.Background(), "cv summary")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestValidatorScore_UnparseableIsDistinctError(t *testing.T) {
	v := NewValidator(&fakeCompleter{out: "no skills were claimed"})

	_, err := v.Score(context.Background(), "cv summary")
	assert.ErrorIs(t, err, score.ErrScoreNotFound)
}
