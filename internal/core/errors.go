package core

import "errors"

var (
	ErrBusy         = errors.New("a reply is still pending")
	ErrEmptyInput   = errors.New("empty input")
	ErrServerStatus = errors.New("server returned non-2xx status")
	ErrStorage      = errors.New("storage failure")
	ErrNoVoice      = errors.New("no speech engine available")
)
