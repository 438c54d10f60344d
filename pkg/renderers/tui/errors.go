package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoController is returned when a nil or uninitialised controller is
	// passed to the renderer.
	ErrNoController = errors.New("tui: controller is not initialized")
	// ErrSearchFailed wraps the message shown in the page error region.
	ErrSearchFailed = errors.New("tui: search failed")
)
