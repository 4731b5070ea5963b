package errors

import (
	"errors"
	"fmt"
)

var (
	ErrTopicRequired   = errors.New("channel topic is required")
	ErrTitleRequired   = errors.New("post title is required")
	ErrAuthorRequired  = errors.New("post author is required")
	ErrChannelNotFound = errors.New("channel not found")
	ErrChannelExists   = errors.New("channel topic already exists")
	ErrPostNotFound    = errors.New("post not found")
)

// SubmissionStage identifies which step of the get-or-create submission flow
// failed, so callers can tell an orphaned channel apart from a clean failure.
type SubmissionStage string

const (
	StageLookup        SubmissionStage = "lookup"
	StageCreateChannel SubmissionStage = "create_channel"
	StageCreatePost    SubmissionStage = "create_post"
)

// SubmissionError wraps a store failure with the stage it occurred in. The
// cause is preserved for diagnostics but is not meant for end-user display.
type SubmissionError struct {
	Stage SubmissionStage
	Cause error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed at %s: %v", e.Stage, e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}

func NewSubmissionError(stage SubmissionStage, cause error) *SubmissionError {
	return &SubmissionError{Stage: stage, Cause: cause}
}
