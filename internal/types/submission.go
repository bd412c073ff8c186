package types

import "github.com/go-playground/validator/v10"

// ContactRequirement carries the header fields that must be filled before a
// resume counts as complete. Values are trimmed by the caller.
type ContactRequirement struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// Validate validates the ContactRequirement using the validator.
func (r *ContactRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
