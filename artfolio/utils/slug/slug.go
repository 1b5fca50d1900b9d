package slug

import (
	"math/rand/v2"
	"strings"
)

const (
	Fallback  = "portfolio"
	alphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLen = 6
)

// Normalize lower-cases s, collapses every run of characters outside
// [a-z0-9] into one hyphen and trims hyphens from both ends. An empty result
// becomes Fallback.
func Normalize(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return Fallback
	}
	return b.String()
}

// WithSuffix appends "-" and six random lowercase alphanumerics.
func WithSuffix(s string) string {
	return s + "-" + Random(suffixLen)
}

func Random(n int) string {
	return randomFrom(alphabet, n)
}

func randomFrom(chars string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = chars[rand.IntN(len(chars))]
	}
	return string(buf)
}
