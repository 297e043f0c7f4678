// Package types provides type definitions for structured data used throughout the mindstyle server.
package types

import (
	"github.com/go-playground/validator/v10"
)

// AssessmentResult represents a completed quiz submission: who took the
// assessment and which thinking styles their answers produced.
type AssessmentResult struct {
	Name            string         `json:"name" validate:"required,min=1"`
	Email           string         `json:"email" validate:"required,email"`
	DominantStyles  []string       `json:"dominantStyles" validate:"required,min=1,unique"`
	SupportingStyle string         `json:"supportingStyle,omitempty"`
	BalanceMessage  string         `json:"balanceMessage,omitempty"`
	Counts          map[string]int `json:"counts" validate:"required,dive,gte=0"`
}

// Validate validates the AssessmentResult using the validator.
func (r *AssessmentResult) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
