package models

import "errors"

// Validation errors. These are always detected before anything is written,
// so a rejected call leaves the store exactly as it was.
var (
	ErrDuplicateName    = errors.New("player with this name already exists")
	ErrEmptyName        = errors.New("player name cannot be empty")
	ErrEmptyTeam        = errors.New("both teams must have at least one player")
	ErrOverlappingTeams = errors.New("a player cannot be on both teams")
	ErrInvalidOutcome   = errors.New("outcome must be a team A win, a team B win or a draw")
	ErrAlreadyVoted     = errors.New("voter has already voted for this match")
	ErrSelfRating       = errors.New("voter cannot rate themselves")
	ErrVoterNotInMatch  = errors.New("voter did not play in this match")
	ErrScoreOutOfRange  = errors.New("score is outside the allowed range")
	ErrMatchNotFound    = errors.New("match not found")
	ErrPlayerNotFound   = errors.New("player not found")
)
