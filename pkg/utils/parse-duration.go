package utils

import (
	"fmt"
	"time"
)

// ParseDurationString parses durations coming from config values, e.g. the
// JWT lifetime. Only the units time.ParseDuration knows are accepted, so a
// config saying "2d" fails at startup instead of silently defaulting.
func ParseDurationString(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid time duration '%s' : %s", value, err.Error())
	}
	return d, nil
}
