package web

import (
	"net/http"
	"regexp"
)

var bearerPattern = regexp.MustCompile(`(?i)^Bearer\s+(\S+)\s*$`)

// BasicCredentialsFromRequest parses the Authorization header of a request. The second return value
// is false if the request has no Basic Authorization header.
func BasicCredentialsFromRequest(req *http.Request) (BasicCredentials, bool) {
	authHdr := req.Header.Get("Authorization")
	if !basicChallengePattern.MatchString(authHdr) {
		return BasicCredentials{}, false
	}
	return ParseBasicCredentials(authHdr), true
}

// BearerTokenFromRequest returns the access token from a "Bearer" Authorization header.
func BearerTokenFromRequest(req *http.Request) (string, bool) {
	m := bearerPattern.FindStringSubmatch(req.Header.Get("Authorization"))
	if m == nil {
		return "", false
	}
	return m[1], true
}
