package domain

import "errors"

var (
	// ErrInvalidURL is returned when no video identifier can be extracted from a URL.
	ErrInvalidURL = errors.New("invalid youtube url")

	// ErrVideoUnavailable is returned when the metadata provider fails or has no such video.
	ErrVideoUnavailable = errors.New("video details unavailable")

	// ErrTranscriptUnavailable is returned when a video has no usable captions.
	ErrTranscriptUnavailable = errors.New("transcript unavailable")

	// ErrUpstreamStatus wraps non-success HTTP statuses from remote collaborators.
	ErrUpstreamStatus = errors.New("upstream returned an error status")

	// ErrModelServerUnreachable is returned when the language model server refuses the connection.
	ErrModelServerUnreachable = errors.New("language model server unreachable")
)
