package core

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	CausetteName      = "Causette"
	CausetteUserAgent = "Causette/0.1"
	CausetteVersion   = "0.1.0"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry of the chat history. The JSON layout is shared with
// the browser widget, so optional fields encode as null when absent.
type Message struct {
	Text   string  `json:"text"`
	Sender Sender  `json:"sender"`
	Image  *string `json:"image"`
	URL    *string `json:"url"`
}

func UserMessage(text string) Message {
	return Message{Text: text, Sender: SenderUser}
}

func BotMessage(text string) Message {
	return Message{Text: text, Sender: SenderBot}
}

// HasMedia reports whether the message carries both an image and a link.
func (m Message) HasMedia() bool {
	return m.Image != nil && *m.Image != "" && m.URL != nil && *m.URL != ""
}

type Mode string

const (
	ModeNormal   Mode = "normal"
	ModeResearch Mode = "research"
)

// ParseMode never fails: anything that is not a known mode is normal.
func ParseMode(s string) Mode {
	if Mode(strings.TrimSpace(s)) == ModeResearch {
		return ModeResearch
	}
	return ModeNormal
}

// Extra holds the media attached to a normalized response.
type Extra struct {
	Image string
	URL   string
}

// Normalized is the display, speech and persistence form of a server reply.
type Normalized struct {
	HTML  string
	Text  string
	Extra *Extra
}

// ServerResponse is the closed set of replies the backend can produce.
type ServerResponse interface {
	isServerResponse()
}

type TextResponse struct {
	Message string
	// Legacy is set when the backend answered with a bare JSON string.
	Legacy bool
}

type WikipediaResponse struct {
	Title       string          `json:"title"`
	Summary     string          `json:"summary"`
	Image       string          `json:"image"`
	URL         string          `json:"url"`
	Requested   string          `json:"requested,omitempty"`
	Description string          `json:"description,omitempty"`
	Sections    []WikipediaLink `json:"sections,omitempty"`
}

type WikipediaLink struct {
	Title string `json:"section_title"`
	URL   string `json:"section_url"`
}

type ErrorResponse struct {
	Message   string
	SearchURL string
}

type UnknownResponse struct {
	Type string
}

func (TextResponse) isServerResponse()      {}
func (WikipediaResponse) isServerResponse() {}
func (ErrorResponse) isServerResponse()     {}
func (UnknownResponse) isServerResponse()   {}

// DecodeServerResponse maps a JSON body to a ServerResponse. It never fails:
// bodies that match no variant become UnknownResponse.
func DecodeServerResponse(data []byte) ServerResponse {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return UnknownResponse{}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return UnknownResponse{}
		}
		return TextResponse{Message: s, Legacy: true}
	}

	var envelope struct {
		Type      string  `json:"type"`
		Message   *string `json:"message"`
		SearchURL *string `json:"search_url"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return UnknownResponse{}
	}

	switch envelope.Type {
	case "text":
		if envelope.Message == nil {
			return UnknownResponse{Type: envelope.Type}
		}
		return TextResponse{Message: *envelope.Message}
	case "wikipedia":
		// null image and url decode as empty strings
		var resp WikipediaResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return UnknownResponse{Type: envelope.Type}
		}
		return resp
	case "error":
		resp := ErrorResponse{}
		if envelope.Message != nil {
			resp.Message = *envelope.Message
		}
		if envelope.SearchURL != nil {
			resp.SearchURL = *envelope.SearchURL
		}
		return resp
	default:
		return UnknownResponse{Type: envelope.Type}
	}
}
