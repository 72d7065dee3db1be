package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrInvalidEventName indicates that the provided event name is invalid (e.g., empty).
	ErrInvalidEventName = errors.New("invalid event name")
	// ErrInvalidCategory indicates that the provided category is invalid (e.g., empty).
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidCapacity indicates that the provided capacity is not a positive integer.
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
	// ErrInvalidOwnerID indicates that the provided owner ID is invalid (e.g., empty).
	ErrInvalidOwnerID = errors.New("invalid owner ID")
	// ErrTeamFull indicates that the team has no free slots left.
	ErrTeamFull = errors.New("team is at full capacity")
	// ErrAlreadyMember indicates that the user is already a member of the team.
	ErrAlreadyMember = errors.New("user is already a team member")
)
