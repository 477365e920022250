// Package validate holds the pure input normalizers and validators for the
// quote form. Everything here is stateless; the intake state machine applies
// the normalizers on every field change, not just at submit.
package validate

import (
	"regexp"
	"strings"
)

var (
	// Canadian postal code grammar. The letter positions exclude D, F, I, O,
	// Q and U, which Canada Post never issues.
	postalCodeRe = regexp.MustCompile(`^(?i)[ABCEGHJ-NPRSTVXY]\d[ABCEGHJ-NPRSTV-Z][ ]?\d[ABCEGHJ-NPRSTV-Z]\d$`)

	// Permissive on purpose: anything@anything.anything. Full RFC 5322
	// validation rejects real addresses more often than it catches typos.
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	nonAlnumRe = regexp.MustCompile(`[^A-Z0-9]`)
	nonDigitRe = regexp.MustCompile(`[^\d]`)
)

// NormalizePostalCode uppercases, strips everything outside A-Z/0-9, and
// formats as "AAA BBB" once more than three characters are present. Extra
// characters beyond six are dropped. Idempotent.
func NormalizePostalCode(input string) string {
	raw := nonAlnumRe.ReplaceAllString(strings.ToUpper(input), "")
	if len(raw) <= 3 {
		return raw
	}
	if len(raw) > 6 {
		raw = raw[:6]
	}
	return strings.TrimSpace(raw[:3] + " " + raw[3:])
}

// IsValidPostalCode reports whether input matches the Canadian postal code
// grammar, with or without the separating space.
func IsValidPostalCode(input string) bool {
	return postalCodeRe.MatchString(strings.TrimSpace(input))
}

// NormalizePhone strips input to digits (keeping one leading "+" if present)
// and renders North American numbers as "(AAA) BBB-CCCC". Ten digits, or
// eleven with a leading 1, qualify; anything else passes through as the bare
// digit string.
func NormalizePhone(input string) string {
	trimmed := strings.TrimSpace(input)
	hasPlus := strings.HasPrefix(trimmed, "+")
	digitsOnly := nonDigitRe.ReplaceAllString(trimmed, "")

	ten := ""
	switch {
	case len(digitsOnly) == 11 && strings.HasPrefix(digitsOnly, "1"):
		ten = digitsOnly[1:]
	case len(digitsOnly) == 10:
		ten = digitsOnly
	}

	if ten != "" {
		return "(" + ten[:3] + ") " + ten[3:6] + "-" + ten[6:]
	}

	if hasPlus {
		return "+" + digitsOnly
	}
	return digitsOnly
}

// IsValidPhone reports whether input contains exactly 10 digits, or 11 with a
// leading 1.
func IsValidPhone(input string) bool {
	digits := nonDigitRe.ReplaceAllString(input, "")
	if len(digits) == 10 {
		return true
	}
	return len(digits) == 11 && strings.HasPrefix(digits, "1")
}

// IsValidEmail applies the loose non-whitespace@non-whitespace.non-whitespace
// check used across the site.
func IsValidEmail(input string) bool {
	return emailRe.MatchString(strings.TrimSpace(input))
}
