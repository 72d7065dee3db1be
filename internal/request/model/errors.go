package model

import "errors"

var (
	// ErrRequestNotFound indicates that the requested membership request does not exist.
	ErrRequestNotFound = errors.New("membership request not found")
	// ErrRequestNotPending indicates an operation on a request that already reached a terminal state.
	ErrRequestNotPending = errors.New("membership request is not pending")
	// ErrInvalidRequestID indicates that the provided request ID is invalid (e.g., empty).
	ErrInvalidRequestID = errors.New("invalid request ID")
	// ErrInvalidUserID indicates that the provided user ID is invalid (e.g., empty).
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrInvalidTeamID indicates that no team was selected for the request.
	ErrInvalidTeamID = errors.New("invalid team ID")
	// ErrNotRecipient indicates that the acting user is not the request recipient.
	ErrNotRecipient = errors.New("only the recipient may resolve the request")
	// ErrNotRequester indicates that the acting user did not create the request.
	ErrNotRequester = errors.New("only the requester may cancel the request")
	// ErrNotTeamOwner indicates that the acting user does not own the team.
	ErrNotTeamOwner = errors.New("only the team owner may invite")
	// ErrSelfRequest indicates a request whose sender and recipient are the same user.
	ErrSelfRequest = errors.New("sender and recipient must differ")
)
