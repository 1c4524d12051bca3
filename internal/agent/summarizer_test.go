package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeResume_Success(t *testing.T) {
	llm := &fakeCompleter{out: "1. Candidate Name: Jane Doe"}
	s := NewSummarizer(llm)

	got := s.SummarizeResume(context.Background(), "Jane Doe, Go developer")

	assert.Equal(t, "1. Candidate Name: Jane Doe", got)
	assert.Contains(t, llm.lastPrompt, "Jane Doe, Go developer")
}

func TestSummarizeResume_TransportFailureReturnsTaggedString(t *testing.T) {
	s := NewSummarizer(&fakeCompleter{err: errTransport})

	got := s.SummarizeResume(context.Background(), "whatever")

	assert.Contains(t, got, "Error:")
	assert.Contains(t, got, "connection reset")
}

func TestSummarizeJob_Success(t *testing.T) {
	llm := &fakeCompleter{out: "**Role Title**\nBackend Engineer"}
	s := NewSummarizer(llm)

	got := s.SummarizeJob(context.Background(), "We need a backend engineer")

	assert.Equal(t, "**Role Title**\nBackend Engineer", got)
	assert.Contains(t, llm.lastPrompt, "We need a backend engineer")
}

func TestSummarizeJob_TransportFailureReturnsTaggedString(t *testing.T) {
	s := NewSummarizer(&fakeCompleter{err: errTransport})

	got := s.SummarizeJob(context.Background(), "whatever")

	assert.Contains(t, got, "Error:")
}
