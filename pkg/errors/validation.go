package errors

import (
	"math"
	"net/url"
	"strings"
	"unicode"
)

// maxPathLength bounds candidate dataset paths and URLs.
const maxPathLength = 2048

// ValidateDatasetPath checks a candidate dataset location.
// Local paths and http(s) URLs are accepted; other URL schemes and paths
// with control characters are rejected.
func ValidateDatasetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "dataset path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "dataset path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "dataset path contains control characters")
		}
	}

	if i := strings.Index(path, "://"); i > 0 {
		u, err := url.Parse(path)
		if err != nil {
			return Wrap(ErrCodeInvalidPath, err, "invalid dataset URL %q", path)
		}
		switch u.Scheme {
		case "http", "https":
		default:
			return New(ErrCodeInvalidPath, "unsupported dataset URL scheme %q", u.Scheme)
		}
		if u.Host == "" {
			return New(ErrCodeInvalidPath, "dataset URL %q has no host", path)
		}
	}
	return nil
}

// ValidatePositive checks that a named dimension is a finite number > 0.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative checks that a named dimension is a finite number >= 0.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative, got %v", name, v)
	}
	return nil
}
