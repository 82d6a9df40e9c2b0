// Package uploads validates profile-image uploads before anything is sent to
// the object store. The content-type check is a closed allowlist, not a
// blocklist: anything not explicitly listed is rejected.
package uploads

import (
	"strings"

	"github.com/carlosdaniiel07/identity-service/internal/common"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// IsValidImage reports whether contentType is an allowed image type.
// The match is exact and case-sensitive; empty or malformed values fail.
func IsValidImage(contentType string) bool {
	_, ok := allowedImageTypes[contentType]
	return ok
}

// ExtensionByContentType returns the subtype of a "type/subtype" content type
// ("image/png" -> "png"). It is meant to be called after IsValidImage; a
// string without a separator fails fast with common.ErrorInvalidContentType
// instead of propagating a garbled extension.
func ExtensionByContentType(contentType string) (string, error) {
	parts := strings.SplitN(contentType, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", common.ErrorInvalidContentType
	}
	return parts[1], nil
}
