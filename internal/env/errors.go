package env

import "errors"

// The environment fails fast on contract violations instead of
// producing garbage learning signals.
var (
	// ErrInvalidAction is returned by Step for actions outside {0, 1}.
	ErrInvalidAction = errors.New("env: invalid action, want 0 (none) or 1 (jump)")

	// ErrNotReset is returned by Step and Render before the first Reset.
	ErrNotReset = errors.New("env: not reset, call Reset before Step")

	// ErrEpisodeDone is returned by Step after a terminal state until
	// Reset starts a new episode.
	ErrEpisodeDone = errors.New("env: episode terminated, call Reset to start a new one")

	// ErrNoDisplay is returned when human render mode is requested
	// without a display to present frames on.
	ErrNoDisplay = errors.New("env: human render mode requires a display")
)
