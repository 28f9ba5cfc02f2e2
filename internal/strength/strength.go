// Package strength classifies secrets into coarse tiers of resistance to
// guessing, based on length and character-class diversity.
package strength

import "strings"

// Tier is a coarse classification of a secret.
type Tier string

const (
	Weak   Tier = "weak"
	Medium Tier = "medium"
	Strong Tier = "strong"
)

// symbols is the fixed set of punctuation counted as a character class.
const symbols = `!@#$%^&*(),.?":{}|<>`

// Classify returns the tier for the given secret. Secrets shorter than 6
// bytes are weak, shorter than 12 are medium; longer secrets are strong when
// at least 3 of the 4 character classes (upper, lower, digit, symbol) are
// present, medium otherwise.
func Classify(secret string) Tier {
	if len(secret) < 6 {
		return Weak
	}
	if len(secret) < 12 {
		return Medium
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range secret {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(symbols, r):
			hasSymbol = true
		}
	}

	classes := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if ok {
			classes++
		}
	}

	if classes >= 3 {
		return Strong
	}
	return Medium
}
