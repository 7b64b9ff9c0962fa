// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Password length bounds at signup. The lower bound counts characters; the
// upper bound is bcrypt's input limit in bytes.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// ValidationError reports a user-correctable input problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks every field against its allowed range.
func (p Profile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return invalid("age", "must be between %d and %d", MinAge, MaxAge)
	}
	if _, ok := sexCodes[p.Sex]; !ok {
		return invalid("sex", "must be %q or %q", SexMale, SexFemale)
	}
	if math.IsNaN(p.BMI) || p.BMI < MinBMI || p.BMI > MaxBMI {
		return invalid("bmi", "must be between %.1f and %.1f", MinBMI, MaxBMI)
	}
	if p.Children < MinChildren || p.Children > MaxChildren {
		return invalid("children", "must be between %d and %d", MinChildren, MaxChildren)
	}
	if RegionIndex(p.Region) < 0 {
		return invalid("region", "must be one of northeast, northwest, southeast, southwest")
	}
	return nil
}

// ValidateSignup applies the account policy before anything is stored.
func ValidateSignup(req SignupRequest) error {
	if req.Username == "" {
		return invalid("username", "is required")
	}
	if req.Password == "" {
		return invalid("password", "is required")
	}
	if req.Password != req.ConfirmPassword {
		return invalid("confirm_password", "passwords don't match")
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return invalid("password", "must be at least %d characters", MinPasswordLength)
	}
	if len(req.Password) > MaxPasswordLength {
		return invalid("password", "must be at most %d bytes", MaxPasswordLength)
	}
	return nil
}

// ToProfile checks that every field is present and in range.
func (r PredictRequest) ToProfile() (Profile, error) {
	switch {
	case r.Age == nil:
		return Profile{}, invalid("age", "is required")
	case r.Sex == "":
		return Profile{}, invalid("sex", "is required")
	case r.BMI == nil:
		return Profile{}, invalid("bmi", "is required")
	case r.Children == nil:
		return Profile{}, invalid("children", "is required")
	case r.Smoker == nil:
		return Profile{}, invalid("smoker", "is required")
	case r.Region == "":
		return Profile{}, invalid("region", "is required")
	}

	p := Profile{
		Age:      *r.Age,
		Sex:      r.Sex,
		BMI:      *r.BMI,
		Children: *r.Children,
		Smoker:   *r.Smoker,
		Region:   r.Region,
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
