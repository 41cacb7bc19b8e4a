package release

import (
	"strings"

	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/moistari/rls"
)

// DetectQuality guesses a tier from the resolution in a release title. The
// fallback is returned when the title carries no recognizable resolution.
func DetectQuality(title string, fallback quality.Tier) quality.Tier {
	r := rls.ParseString(title)

	switch strings.ToLower(r.Resolution) {
	case "2160p", "4320p", "1080p", "1080i":
		return quality.High
	case "720p":
		return quality.Medium
	case "576p", "576i", "540p", "480p", "480i", "360p":
		return quality.Low
	}

	return fallback
}
