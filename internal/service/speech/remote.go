package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"

	"github.com/sandevgo/causette/internal/core"
)

type remoteRequest struct {
	Text   string  `json:"text"`
	Voice  string  `json:"voice"`
	Lang   string  `json:"lang"`
	Pitch  float64 `json:"pitch"`
	Rate   float64 `json:"rate"`
	Volume float64 `json:"volume"`
}

// RemoteEngine asks a synthesis service for audio and plays it by piping the
// response into a player command.
type RemoteEngine struct {
	url    string
	player []string
	client *http.Client
}

func NewRemoteEngine(url string, player []string, client *http.Client) *RemoteEngine {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteEngine{url: url, player: player, client: client}
}

func (e *RemoteEngine) Name() string {
	return "remote"
}

func (e *RemoteEngine) Available() bool {
	if e.url == "" || len(e.player) == 0 {
		return false
	}
	_, err := exec.LookPath(e.player[0])
	return err == nil
}

func (e *RemoteEngine) Speak(ctx context.Context, text string, voice core.Voice) error {
	payload, err := json.Marshal(remoteRequest{
		Text:   text,
		Voice:  voice.Name,
		Lang:   voice.Lang,
		Pitch:  voice.Pitch,
		Rate:   voice.Rate,
		Volume: voice.Volume,
	})
	if err != nil {
		return fmt.Errorf("failed to encode speech request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create speech request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.CausetteUserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("speech request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("speech service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return e.play(ctx, resp.Body)
}

func (e *RemoteEngine) play(ctx context.Context, audio io.Reader) error {
	cmd := exec.CommandContext(ctx, e.player[0], e.player[1:]...)
	cmd.Stdin = audio

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("player %s failed: %w: %s", e.player[0], err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
