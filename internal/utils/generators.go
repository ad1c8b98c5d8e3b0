package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL slug: lowercase, hyphen-separated,
// stripped of anything outside [a-z0-9].
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// TimestampedSlug appends the current unix-millisecond timestamp, used when
// the plain slug is already taken.
func TimestampedSlug(slug string) string {
	return fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
}

// GenerateTicketCode builds codes like TKT-1712345678901-9F3A2B7C.
// Uniqueness also rests on the column's unique index.
func GenerateTicketCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TKT-%d-%s", time.Now().UnixMilli(), suffix)
}

// GeneratePaymentReference builds gateway references like TXN_1712345678_9f3a2b7.
// Used for free-event purchases where no gateway round-trip happens.
func GeneratePaymentReference() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("TXN_%d_%s", time.Now().Unix(), suffix)
}
