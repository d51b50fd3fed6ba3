package store

import "errors"

// Sentinel errors returned by store operations.
var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrFolderNotFound   = errors.New("bookmark folder not found")
	ErrDealNotFound     = errors.New("deal not found")
	ErrDuplicateFolder  = errors.New("bookmark folder already exists")
	ErrDealExhausted    = errors.New("deal has no redemptions remaining")
	ErrDuplicateID      = errors.New("id already exists")
)
