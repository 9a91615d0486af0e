package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("server error")
	ErrUnknownLocation     = errors.New("unknown weather location")
	ErrNoAudioData         = errors.New("no audio data returned")
	ErrEmptyCandidates     = errors.New("no candidates in response")
)
