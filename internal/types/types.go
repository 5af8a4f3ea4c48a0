package types

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidDataURI is returned when a data URI does not follow RFC 2397
var ErrInvalidDataURI = errors.New("invalid data URI")

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IsHTTPURL checks if a string is an absolute http or https URL
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsDataURI checks if a string uses the data: scheme
func IsDataURI(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), "data:")
}

// DataURI is a parsed RFC 2397 data URI
type DataURI struct {
	MimeType string
	Base64   bool
	// Data is the raw payload after the comma; percent-decoded when not base64
	Data string
}

// ParseDataURI parses a data URI of the form data:[<mediatype>][;base64],<data>
func ParseDataURI(s string) (*DataURI, error) {
	if !IsDataURI(s) {
		return nil, ErrInvalidDataURI
	}

	header, data, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return nil, ErrInvalidDataURI
	}

	parsed := &DataURI{MimeType: "text/plain"}
	params := strings.Split(header, ";")
	if params[0] != "" {
		parsed.MimeType = strings.ToLower(strings.TrimSpace(params[0]))
	}
	for _, param := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(param), "base64") {
			parsed.Base64 = true
		}
	}

	if parsed.Base64 {
		parsed.Data = data
		return parsed, nil
	}

	unescaped, err := url.PathUnescape(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidDataURI, err)
	}
	parsed.Data = unescaped

	return parsed, nil
}
