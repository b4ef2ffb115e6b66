// internal/evaluation/errors.go

// Package evaluation aggregates the nutrients of a meal selection and scores the
// result against a target profile.
package evaluation

import "errors"

var (
	// ErrUnknownProfile is returned when the profile id is not in the profile table.
	ErrUnknownProfile = errors.New("unknown target profile")
	// ErrEmptySelection is returned when a meal with no items is evaluated.
	ErrEmptySelection = errors.New("meal selection is empty")
)
