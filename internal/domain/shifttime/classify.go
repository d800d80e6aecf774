package shifttime

import (
	"fmt"
	"time"
)

// Bucket is the coarse remaining-time classification of a shift.
type Bucket int

const (
	BucketPast     Bucket = iota // shift already started
	BucketImminent               // less than 30 minutes away
	BucketSameDay                // less than 24 hours away
	BucketFuture                 // a day or more away
)

// Classify returns the signed number of hours between now and the
// resolved shift timestamp, and which bucket that falls in.
func Classify(resolved, now time.Time) (float64, Bucket) {
	hours := resolved.Sub(now).Hours()

	switch {
	case hours < 0:
		return hours, BucketPast
	case hours < 0.5:
		return hours, BucketImminent
	case hours < 24:
		return hours, BucketSameDay
	default:
		return hours, BucketFuture
	}
}

// StatusLabel formats a remaining-hours value as a short human status.
func StatusLabel(hours float64) string {
	switch {
	case hours < 0:
		return "✅ JÁ PASSOU"
	case hours < 0.5:
		return fmt.Sprintf("🚨 EM %d MIN", int(hours*60))
	case hours < 24:
		return fmt.Sprintf("⏰ EM %d HORAS", int(hours))
	default:
		return fmt.Sprintf("📅 EM %d DIAS", int(hours/24))
	}
}
