package middleware

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// GenerateETag returns the quoted strong validator of a response body.
func GenerateETag(content []byte) string {
	return `"` + strconv.FormatUint(xxhash.Sum64(content), 16) + `"`
}

// GenerateWeakETag is for representations that are equivalent but not byte identical.
func GenerateWeakETag(content []byte) string {
	return "W/" + GenerateETag(content)
}
