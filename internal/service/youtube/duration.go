package youtube

import (
	"errors"
	"regexp"
	"strconv"
)

// ErrUnparseableDuration marks a duration token that does not match the
// ISO 8601 PT form. Callers drop the affected item and keep going.
var ErrUnparseableDuration = errors.New("unparseable video duration")

var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converts an ISO 8601 duration token to whole seconds.
// Example: "PT4M13S" -> 253. Missing components are zero, so a bare "PT" is
// zero seconds. Hour counts are not bounded.
func ParseDuration(duration string) (int, error) {
	m := durationPattern.FindStringSubmatch(duration)
	if m == nil {
		return 0, ErrUnparseableDuration
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])

	return hours*3600 + minutes*60 + seconds, nil
}
