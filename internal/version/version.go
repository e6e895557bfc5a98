// Package version contains the SDK version string.
package version

// Version is the current SDK version. It is sent in the User-Agent header of API requests.
const Version = "1.0.0"
