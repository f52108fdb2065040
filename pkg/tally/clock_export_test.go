package tally

// WithClock lets the external tests drive timings with a fake clock.
var WithClock = withClock
