package quiz

import "time"

// explanationTickMsg polls the tutor service for a pending explanation.
type explanationTickMsg time.Time

// savedMsg confirms the post-session profile commit.
type savedMsg struct {
	Err error
}
