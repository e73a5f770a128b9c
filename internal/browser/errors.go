// Package browser drives the headless rendering engine that converts resume
// HTML documents into fixed-page PDF artifacts.
package browser

import (
	"fmt"
	"time"
)

// EngineNotFoundError indicates that no usable rendering engine binary is
// available for the current environment. Fatal; the message names the
// remediation so it can be surfaced to operators as-is.
type EngineNotFoundError struct {
	Message string
	Cause   error
}

func (e *EngineNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rendering engine not found: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rendering engine not found: %s", e.Message)
}

func (e *EngineNotFoundError) Unwrap() error {
	return e.Cause
}

// RenderTimeoutError indicates the engine launch or content load exceeded
// its bound. The pipeline does not retry; callers may resubmit the whole
// request.
type RenderTimeoutError struct {
	Timeout time.Duration
}

func (e *RenderTimeoutError) Error() string {
	return fmt.Sprintf("rendering timed out after %s", e.Timeout)
}

// RenderError represents any other engine-reported failure during load or
// artifact extraction.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
