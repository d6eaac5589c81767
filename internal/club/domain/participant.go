package domain

import "time"

// Participant is a raffle entry for the current drawing. At most one row
// exists per DNI; joining again replaces the row wholesale, which resets
// JoinedAt (matching the upsert semantics users already rely on).
type Participant struct {
	DNI        string
	JoinedAt   time.Time
	LastSeenAt time.Time
}

// OnlineWindow is how recent a heartbeat must be for a participant to be
// presented as "online". Display hint only, never an eligibility rule.
const OnlineWindow = 60 * time.Second

// Online reports whether the participant's last heartbeat falls within
// the online window relative to now.
func (p Participant) Online(now time.Time) bool {
	return now.Sub(p.LastSeenAt) < OnlineWindow
}

// ParticipantView is a participant hydrated with the member's display
// name for the admin list and the user panel.
type ParticipantView struct {
	DNI        string    `json:"dni"`
	Name       string    `json:"name"`
	JoinedAt   time.Time `json:"joinedAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	Online     bool      `json:"online"`
}
