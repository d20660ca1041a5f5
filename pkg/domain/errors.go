package domain

import "errors"

// ErrAnswerGeneration marks the one fatal runtime failure: the terminal
// node could not synthesize an answer. Everything before it degrades
// gracefully into State.Errors.
var ErrAnswerGeneration = errors.New("answer generation failed")

// ErrToolNotFound is returned by a ToolInvoker when the named tool is not registered.
var ErrToolNotFound = errors.New("tool not found")

// ErrCapabilityUnavailable wraps network or store failures from capability
// clients. Flows record it and continue past optional steps.
var ErrCapabilityUnavailable = errors.New("capability unavailable")
