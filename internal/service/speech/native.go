package speech

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sandevgo/causette/internal/core"
)

// Default words per minute of say and espeak at rate 1.
const baseWPM = 175

// NativeEngine speaks through the platform's text-to-speech command.
type NativeEngine struct {
	bin string
}

// NewNativeEngine uses override when set, otherwise the first platform
// command found on PATH.
func NewNativeEngine(override string) *NativeEngine {
	if override != "" {
		return &NativeEngine{bin: override}
	}

	for _, candidate := range platformCommands(runtime.GOOS) {
		if _, err := exec.LookPath(candidate); err == nil {
			return &NativeEngine{bin: candidate}
		}
	}
	return &NativeEngine{}
}

func platformCommands(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"say"}
	case "linux", "freebsd", "openbsd":
		return []string{"espeak-ng", "espeak", "spd-say"}
	default:
		return nil
	}
}

func (e *NativeEngine) Name() string {
	if e.bin == "" {
		return "native"
	}
	return "native:" + filepath.Base(e.bin)
}

func (e *NativeEngine) Available() bool {
	if e.bin == "" {
		return false
	}
	_, err := exec.LookPath(e.bin)
	return err == nil
}

func (e *NativeEngine) Speak(ctx context.Context, text string, voice core.Voice) error {
	if e.bin == "" {
		return core.ErrNoVoice
	}

	cmd := exec.CommandContext(ctx, e.bin, nativeArgs(filepath.Base(e.bin), text, voice)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", e.Name(), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// nativeArgs maps the voice onto each command's own scales.
func nativeArgs(bin, text string, voice core.Voice) []string {
	lang := strings.ToLower(strings.SplitN(voice.Lang, "-", 2)[0])
	wpm := scale(baseWPM * voice.Rate)

	switch bin {
	case "say":
		return []string{"-r", wpm, text}
	case "espeak-ng", "espeak":
		return []string{
			"-v", lang,
			"-s", wpm,
			"-p", scale(50 * voice.Pitch),
			"-a", scale(100 * voice.Volume),
			text,
		}
	case "spd-say":
		return []string{
			"-w",
			"-l", lang,
			"-r", scale((voice.Rate - 1) * 100),
			"-p", scale((voice.Pitch - 1) * 100),
			"-i", scale((voice.Volume - 1) * 100),
			text,
		}
	default:
		return []string{text}
	}
}

func scale(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
