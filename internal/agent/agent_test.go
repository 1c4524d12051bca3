package agent

import (
	"context"
	"errors"
)

// fakeCompleter implements service.TogetherServiceInterface for tests.
type fakeCompleter struct {
	out        string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.out, f.err
}

// fakeGenerator implements service.GeminiServiceInterface for tests.
type fakeGenerator struct {
	out        string
	err        error
	lastPrompt string
	lastTemp   float32
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, temperature float32) (string, error) {
	f.lastPrompt = prompt
	f.lastTemp = temperature
	return f.out, f.err
}

var errTransport = errors.New("connection reset by peer")
