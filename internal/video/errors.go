package video

import "errors"

// ErrVideoNotFound is returned when no video matches the given user and video id
var ErrVideoNotFound = errors.New("video not found")
