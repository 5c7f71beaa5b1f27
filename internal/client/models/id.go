package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates a record identifier: the current unix-millisecond timestamp
// followed by a 9-character random suffix. Collisions are treated as
// negligible rather than formally prevented.
func NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix
}
