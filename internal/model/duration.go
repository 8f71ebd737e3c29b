package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DurationLayout documents the canonical textual form of a play duration.
const DurationLayout = "HH:mm:ss"

// ErrInvalidDuration is returned when a duration string does not follow
// DurationLayout.
var ErrInvalidDuration = errors.New("invalid duration")

var durationPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])$`)

// ParseDuration parses s in the HH:mm:ss form.  Hours range 00-23.
func ParseDuration(s string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	return time.Duration(h)*time.Hour + time.Duration(mins)*time.Minute + time.Duration(sec)*time.Second, nil
}

// FormatDuration renders d as HH:mm:ss.  Sub-second precision is dropped.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
