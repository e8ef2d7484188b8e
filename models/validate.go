package models

import (
	"regexp"

	"github.com/hritik2004-cse/portfolio-backend/errs"
)

// Validation rules shared across the footer entities.
var (
	linkURLRegexp  = regexp.MustCompile(`^(https?://|mailto:|tel:)`)
	hexColorRegexp = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	emailRegexp    = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phoneRegexp    = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	websiteRegexp  = regexp.MustCompile(`^https?://.+`)
)

func missingField(name string) *errs.ApiErr {
	return errs.NewMissingRequiredFieldError(name)
}

func invalidField(name, reason string) *errs.ApiErr {
	return errs.NewInvalidFieldError(name, reason)
}

func validPriority(p int) bool {
	return p >= 1 && p <= 100
}
