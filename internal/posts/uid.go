package posts

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ensureUID returns the post's uid from front matter, generating one when
// the key is missing. Generated uids are stable only for the current build;
// authors who want permanence commit the uid to front matter themselves.
func ensureUID(fields map[string]any) string {
	if v, ok := fields["uid"]; ok && v != nil {
		if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
			return s
		}
	}
	return uuid.NewString()
}
