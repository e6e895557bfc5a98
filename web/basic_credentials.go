// Package web contains small HTTP value types shared by the Authlete client and by servers that
// sit in front of Authlete: Basic authentication credentials, a case-insensitive header collection,
// and the HTTP method enumeration.
package web

import (
	"encoding/base64"
	"regexp"
	"strings"

	ct "github.com/launchdarkly/go-configtypes"
)

var basicChallengePattern = regexp.MustCompile(`(?i)^Basic\s*(\S+)\s*$`)

// BasicCredentials holds a user ID and password as carried by HTTP Basic authentication.
//
// Either part may be undefined. The zero value has both parts undefined.
type BasicCredentials struct {
	userID      ct.OptString
	password    ct.OptString
	credentials string
}

// NewBasicCredentials creates credentials from an optional user ID and password.
func NewBasicCredentials(userID, password ct.OptString) BasicCredentials {
	return BasicCredentials{
		userID:      userID,
		password:    password,
		credentials: userID.GetOrElse("") + ":" + password.GetOrElse(""),
	}
}

// NewBasicCredentialsFromStrings is a shortcut for NewBasicCredentials with both parts defined.
func NewBasicCredentialsFromStrings(userID, password string) BasicCredentials {
	return NewBasicCredentials(ct.NewOptString(userID), ct.NewOptString(password))
}

// ParseBasicCredentials extracts credentials from the value of an Authorization header, such as
// "Basic dXNlcmlkOnBhc3N3b3Jk".
//
// This never fails. A missing header, a different scheme, or a malformed value all produce
// credentials whose user ID and password are undefined.
func ParseBasicCredentials(headerValue string) BasicCredentials {
	if headerValue == "" {
		return NewBasicCredentials(ct.OptString{}, ct.OptString{})
	}
	m := basicChallengePattern.FindStringSubmatch(headerValue)
	if m == nil || m[1] == "" {
		return NewBasicCredentials(ct.OptString{}, ct.OptString{})
	}

	decoded := decodeBase64Leniently(m[1])

	// Split on the first colon only; the password may contain more colons.
	userID, password, found := strings.Cut(decoded, ":")
	if !found {
		return NewBasicCredentials(optNonEmpty(userID), ct.OptString{})
	}
	return NewBasicCredentials(optNonEmpty(userID), optNonEmpty(password))
}

// A value that cannot be decoded is treated as an empty payload rather than as an error, keeping
// the parser's no-failure contract.
func decodeBase64Leniently(s string) string {
	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return string(data)
	}
	if data, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return string(data)
	}
	return ""
}

func optNonEmpty(s string) ct.OptString {
	if s == "" {
		return ct.OptString{}
	}
	return ct.NewOptString(s)
}

// UserID returns the user ID, which is undefined if it was absent.
func (b BasicCredentials) UserID() ct.OptString { return b.userID }

// Password returns the password, which is undefined if it was absent.
func (b BasicCredentials) Password() ct.OptString { return b.password }

// Credentials returns "{userID}:{password}", with an empty string for an undefined part.
func (b BasicCredentials) Credentials() string {
	if b.credentials == "" {
		return ":"
	}
	return b.credentials
}

// Format returns the Authorization header value for these credentials, "Basic " followed by the
// base64 encoding of Credentials().
func (b BasicCredentials) Format() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(b.Credentials()))
}

// String returns the user ID with the password masked.
func (b BasicCredentials) String() string {
	if b.password.IsDefined() {
		return b.userID.GetOrElse("") + ":***"
	}
	return b.userID.GetOrElse("") + ":"
}
