package read

import "time"

// timerTickMsg drives the reading countdown.
type timerTickMsg time.Time

// transcriptMsg carries the recognizer result for a recorded attempt.
type transcriptMsg struct {
	Text string
	Err  error
}

// savedMsg carries the result of persisting the profile.
type savedMsg struct {
	Err error
}
