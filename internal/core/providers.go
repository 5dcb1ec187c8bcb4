package core

import "context"

// BackendClient asks the question/answer endpoint.
type BackendClient interface {
	Ask(ctx context.Context, question string) (ServerResponse, error)
}

// Voice carries the synthesis parameters for one utterance.
type Voice struct {
	Lang   string
	Name   string
	Pitch  float64
	Rate   float64
	Volume float64
}

// VoiceBackend speaks a single chunk and returns once it has been played.
type VoiceBackend interface {
	Name() string
	Available() bool
	Speak(ctx context.Context, text string, voice Voice) error
}

// Presenter is the rendering surface the chat session drives.
type Presenter interface {
	AppendMessage(msg Message)
	ClearInput()
	ShowTyping()
	// ReplaceTyping swaps the typing indicator for the reply and returns once
	// the reveal effect has finished.
	ReplaceTyping(ctx context.Context, resp Normalized) error
	SetMode(mode Mode)
	Reset()
}
