package models

import "errors"

// Custom errors
var (
	ErrNoRosterSpace     = errors.New("no space on roster for player")
	ErrSpotIneligible    = errors.New("player not eligible for roster spot")
	ErrSwapIneligible    = errors.New("players cannot swap roster spots")
	ErrPlayerNotOnRoster = errors.New("player not on roster")
	ErrPlayerUnavailable = errors.New("player not available to pick")
	ErrDraftComplete     = errors.New("draft already complete")
	ErrPickOutOfRange    = errors.New("pick number out of range")
	ErrNotFound          = errors.New("record not found")
)
