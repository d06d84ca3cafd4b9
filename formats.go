package contracts

import (
	"net/mail"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// Named types for common configuration atoms. Each one is a refinement of
// Str: non-string candidates fail without error.
var (
	// UUID matches canonical 36-character UUID strings.
	UUID = Type{Name: "uuid", Check: isUUID}

	// SemVer matches semantic version strings such as "1.2.3-rc.1".
	SemVer = Type{Name: "semver", Check: isSemVer}

	// Email matches RFC 5322 addresses with a dotted domain.
	Email = Type{Name: "email", Check: isEmail}

	// NonEmptyStr matches any string with at least one character.
	NonEmptyStr = Type{Name: "nonEmptyString", Check: func(v any) bool {
		s, ok := v.(string)
		return ok && s != ""
	}}
)

func isUUID(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	// Fast rejection: check length and hyphen positions before parsing.
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func isSemVer(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	_, err := semver.StrictNewVersion(strings.TrimPrefix(s, "v"))
	return err == nil
}

func isEmail(v any) bool {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	parts := strings.Split(s, "@")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}
	domain := parts[1]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
