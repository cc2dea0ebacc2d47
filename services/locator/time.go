package locator

import (
	"time"
)

// wp-json timestamps are naive, the zone has to be recovered from the
// local/gmt pair.
const wpTimeLayout = "2006-01-02T15:04:05"

// resolveLocalTime attaches the offset between a naive local
// timestamp and its naive UTC twin to the local one, yielding a
// zone-aware instant equal to the UTC input.
func resolveLocalTime(local, utc string) (time.Time, error) {
	localTime, err := time.Parse(wpTimeLayout, local)
	if err != nil {
		return time.Time{}, err
	}
	if utc == "" {
		return localTime, nil
	}
	utcTime, err := time.Parse(wpTimeLayout, utc)
	if err != nil {
		return time.Time{}, err
	}

	offset := localTime.Sub(utcTime)
	zone := time.FixedZone("", int(offset.Seconds()))
	return time.Date(
		localTime.Year(), localTime.Month(), localTime.Day(),
		localTime.Hour(), localTime.Minute(), localTime.Second(),
		localTime.Nanosecond(), zone,
	), nil
}
