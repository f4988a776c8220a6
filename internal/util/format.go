// Package util holds small display helpers shared by the CLI.
package util //nolint:revive // package name util hosts shared formatting helpers

import "time"

// FormatRemaining formats the time left until deadline, measured from now.
// Returns "expired" once the deadline has passed and "-" for a zero deadline.
// Durations are truncated to whole seconds.
func FormatRemaining(deadline, now time.Time) string {
	switch {
	case deadline.IsZero():
		return "-"
	case !now.Before(deadline):
		return "expired"
	default:
		return "in " + deadline.Sub(now).Truncate(time.Second).String()
	}
}
