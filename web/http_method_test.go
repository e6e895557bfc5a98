package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHTTPMethod(t *testing.T) {
	m, ok := ParseHTTPMethod("post")
	assert.True(t, ok)
	assert.Equal(t, MethodPost, m)

	m, ok = ParseHTTPMethod("Delete")
	assert.True(t, ok)
	assert.Equal(t, MethodDelete, m)

	_, ok = ParseHTTPMethod("FETCH")
	assert.False(t, ok)
}

func TestHTTPMethodHasRequestBody(t *testing.T) {
	assert.True(t, MethodPost.HasRequestBody())
	assert.True(t, MethodPatch.HasRequestBody())
	assert.False(t, MethodGet.HasRequestBody())
	assert.False(t, MethodDelete.HasRequestBody())
	assert.Equal(t, "GET", MethodGet.String())
}
