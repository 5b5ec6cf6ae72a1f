package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var mobilePattern = regexp.MustCompile(`^\d{6,15}$`)

// NormalizeMobile cleans a mobile number and validates it is a plausible
// subscriber number: separators stripped, digits only
func NormalizeMobile(mobile string) (string, error) {
	stripped := strings.TrimSpace(mobile)
	stripped = strings.ReplaceAll(stripped, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	if stripped == "" {
		return "", fmt.Errorf("mobile number is empty")
	}
	if !mobilePattern.MatchString(stripped) {
		return "", fmt.Errorf("mobile number must be 6-15 digits")
	}

	return stripped, nil
}
