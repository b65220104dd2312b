package ui

import (
	"fmt"
	"time"

	"github.com/renato0307/revue/internal/domain"
)

// formatRelativeTime converts a timestamp to a human-readable relative time string.
// Returns empty string for zero times.
//
// Format:
//   - < 1 min: "just now"
//   - < 1 hour: "Xm ago"
//   - < 24 hours: "Xh ago"
//   - < 7 days: "Xd ago"
//   - < 30 days: "Xw ago"
//   - < 365 days: "Xmo ago"
//   - >= 365 days: "Xy ago"
func formatRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return formatWithUnit(int(elapsed.Minutes()), "m")
	case elapsed < 24*time.Hour:
		return formatWithUnit(int(elapsed.Hours()), "h")
	case elapsed < 7*24*time.Hour:
		return formatWithUnit(int(elapsed.Hours()/24), "d")
	case elapsed < 30*24*time.Hour:
		return formatWithUnit(int(elapsed.Hours()/(24*7)), "w")
	case elapsed < 365*24*time.Hour:
		return formatWithUnit(int(elapsed.Hours()/(24*30)), "mo")
	}
	return formatWithUnit(int(elapsed.Hours()/(24*365)), "y")
}

func formatWithUnit(value int, unit string) string {
	return fmt.Sprintf("%d%s ago", value, unit)
}

func ageLabel(age domain.AgeCategory) string {
	switch age {
	case domain.AgeFresh:
		return "< 1d"
	case domain.AgeAging:
		return "1-2d"
	}
	return "> 2d"
}

func ciLabel(status domain.CIStatus) string {
	switch status {
	case domain.CISuccess:
		return "CI passed"
	case domain.CIFailure:
		return "CI failed"
	case domain.CIPending:
		return "CI running"
	}
	return "CI skipped"
}

func buildStatusLabel(status domain.BuildStatus) string {
	switch status {
	case domain.BuildFinished:
		return "Success"
	case domain.BuildErrored:
		return "Error"
	case domain.BuildInProgress:
		return "In progress"
	case domain.BuildInQueue:
		return "In queue"
	case domain.BuildNew:
		return "New"
	case domain.BuildCanceled:
		return "Canceled"
	case domain.BuildPendingCancel:
		return "Canceling"
	}
	return string(status)
}

func platformLabel(p domain.Platform) string {
	switch p {
	case domain.PlatformIOS:
		return "iOS"
	case domain.PlatformAndroid:
		return "Android"
	}
	return string(p)
}
