package password

import "strings"

// Strength is the 5-point score used when creating staff accounts.
// A password is accepted only at the maximum score.
type Strength struct {
	Score    int
	Feedback []string
	IsValid  bool
}

const specialChars = `!@#$%^&*(),.?":{}|<>`

func CheckStrength(password string) Strength {
	var s Strength

	checks := []struct {
		ok      bool
		missing string
	}{
		{len(password) >= 8, "at least 8 characters"},
		{strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }), "at least one uppercase letter"},
		{strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }), "at least one lowercase letter"},
		{strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }), "at least one digit"},
		{strings.ContainsAny(password, specialChars), "at least one special character"},
	}

	for _, c := range checks {
		if c.ok {
			s.Score++
		} else {
			s.Feedback = append(s.Feedback, c.missing)
		}
	}

	s.IsValid = s.Score == len(checks)
	return s
}

func Validate(password string) error {
	if !CheckStrength(password).IsValid {
		return ErrWeakPassword
	}
	return nil
}
