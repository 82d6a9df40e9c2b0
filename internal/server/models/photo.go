package models

import "time"

// ProfilePhoto is the result of a profile-image upload: the resolvable URI of
// the stored object and the upload time. It is not persisted.
type ProfilePhoto struct {
	URI       string
	CreatedAt time.Time
}
