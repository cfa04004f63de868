package services

import (
	"regexp"
	"strings"

	goaway "github.com/TwiN/go-away"
	"github.com/go-faster/errors"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,15}$`)
var usernameTokenSplit = regexp.MustCompile(`[\s_]+`)

var usernameBlacklist = []string{
	"admin", "test", "username", "inappropriate", "kuta", "kuti", "bkl", "terimkc", "lora", "muther",
}

// ValidateUsername enforces the username rules: 3-15 characters from
// [A-Za-z0-9_], and no blacklisted or profane word as a delimited token.
// "super_admin_x" fails because "admin" stands alone between underscores.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return errors.Wrap(ErrValidation, "username must be 3-15 characters and only contain letters, numbers, or underscores")
	}

	for _, word := range usernameTokenSplit.Split(username, -1) {
		if word == "" {
			continue
		}
		lower := strings.ToLower(word)
		for _, banned := range usernameBlacklist {
			if lower == banned {
				return errors.Wrap(ErrValidation, "username must not include inappropriate words")
			}
		}
		if goaway.IsProfane(word) {
			return errors.Wrap(ErrValidation, "username must not include inappropriate words")
		}
	}
	return nil
}

// NormalizeUsername produces the lowercased, trimmed projection stored in
// usernameLower and used for uniqueness checks and submitter lookups.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
