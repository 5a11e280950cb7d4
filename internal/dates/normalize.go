package dates

import "time"

// Reference is the fixed zone all calendar days are expressed in (UTC+7).
// Tasks belong to a calendar day in this zone no matter where the process
// runs, so a task created on a laptop in Berlin and listed on a server in
// Saigon lands on the same day.
var Reference = time.FixedZone("UTC+7", 7*60*60)

// Normalize converts an arbitrary instant into the canonical calendar day
// it falls on in the reference zone: the instant's UTC time shifted by +7h,
// with time-of-day discarded. Normalizing an already-normalized day returns
// the same day.
func Normalize(instant time.Time) time.Time {
	shifted := instant.In(Reference)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, Reference)
}

// SameDay reports whether two instants fall on the same canonical day
func SameDay(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}
