package countdown

import "time"

// Breakdown is a duration decomposed into display units. All fields
// are non-negative; Hours, Minutes, Seconds and Milliseconds are
// bounded by their unit.
type Breakdown struct {
	Days         int
	Hours        int // 0-23
	Minutes      int // 0-59
	Seconds      int // 0-59
	Milliseconds int // 0-999
}

// Decompose splits a duration into days, hours, minutes, seconds and
// milliseconds. Zero and negative durations decompose to the zero
// Breakdown; sub-millisecond remainders are truncated.
func Decompose(d time.Duration) Breakdown {
	if d <= 0 {
		return Breakdown{}
	}

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second

	return Breakdown{
		Days:         int(days),
		Hours:        int(hours),
		Minutes:      int(minutes),
		Seconds:      int(seconds),
		Milliseconds: int(d / time.Millisecond),
	}
}

// Duration reconstructs the total duration from the breakdown fields,
// at millisecond precision.
func (b Breakdown) Duration() time.Duration {
	return time.Duration(b.Days)*24*time.Hour +
		time.Duration(b.Hours)*time.Hour +
		time.Duration(b.Minutes)*time.Minute +
		time.Duration(b.Seconds)*time.Second +
		time.Duration(b.Milliseconds)*time.Millisecond
}

// IsZero reports whether every field of the breakdown is zero.
func (b Breakdown) IsZero() bool {
	return b == Breakdown{}
}
