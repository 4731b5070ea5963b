package errors

import "errors"

var (
	ErrSignInRequired   = errors.New("sign in to vote")
	ErrInvalidVoteInput = errors.New("invalid vote input")
	ErrPostRequired     = errors.New("post id is required")
)
