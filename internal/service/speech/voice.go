package speech

import (
	"strings"

	"github.com/sandevgo/causette/internal/core"
)

// VoiceName picks the preferred voice of the remote engine for a language.
func VoiceName(lang string) string {
	if strings.EqualFold(lang, "fr-FR") {
		return "French Female"
	}
	return "US English Female"
}

func RemoteVoice(lang string) core.Voice {
	return core.Voice{
		Lang:   lang,
		Name:   VoiceName(lang),
		Pitch:  0.9,
		Rate:   0.85,
		Volume: 1,
	}
}

func NativeVoice(lang string) core.Voice {
	return core.Voice{
		Lang:   lang,
		Pitch:  0.95,
		Rate:   0.9,
		Volume: 1,
	}
}
