package authors

import "strings"

// socialPlatformBase maps known social platform names to their profile URL
// prefix. Values users supply for these platforms may be bare handles; they
// are expanded to full profile URLs. Unknown platforms pass through as-is.
var socialPlatformBase = map[string]string{
	"twitter":       "https://twitter.com/",
	"x":             "https://x.com/",
	"github":        "https://github.com/",
	"linkedin":      "https://www.linkedin.com/in/",
	"stackoverflow": "https://stackoverflow.com/users/",
	"bluesky":       "https://bsky.app/profile/",
	"mastodon":      "https://mastodon.social/@",
	"threads":       "https://www.threads.net/@",
	"instagram":     "https://www.instagram.com/",
	"youtube":       "https://www.youtube.com/@",
	"twitch":        "https://www.twitch.tv/",
}

// NormalizeSocials lowercases platform names and expands bare handles for
// known platforms into full profile URLs. Values that already look like URLs
// are passed through unchanged.
func NormalizeSocials(socials map[string]string) map[string]string {
	if len(socials) == 0 {
		return socials
	}
	out := make(map[string]string, len(socials))
	for platform, value := range socials {
		key := strings.ToLower(platform)
		if isSocialURL(value) {
			out[key] = value
			continue
		}
		if base, ok := socialPlatformBase[key]; ok {
			out[key] = base + value
		} else {
			out[key] = value
		}
	}
	return out
}

func isSocialURL(v string) bool {
	return strings.Contains(v, "://")
}
