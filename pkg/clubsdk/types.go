package clubsdk

import "time"

// ErrorResponse is the standard error body. Used internally for parsing
// HTTP error responses; client code receives *APIError instead.
type ErrorResponse struct {
	// Error is the machine-readable error code
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// TokenResponse is returned by the login, register and admin PIN
// endpoints. The bearer token authenticates every Session call.
type TokenResponse struct {
	// Token is the signed session token
	Token string `json:"token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the token
	ExpiresIn int `json:"expires_in"`

	// Tier is the privilege level granted: "user", "admin" or "superadmin"
	Tier string `json:"tier"`

	// Name is the member's display name (empty for admin sessions)
	Name string `json:"name,omitempty"`
}

// Participant is one raffle entry, hydrated with the member's name.
type Participant struct {
	DNI        string    `json:"dni"`
	Name       string    `json:"name"`
	JoinedAt   time.Time `json:"joinedAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	Online     bool      `json:"online"`
}

// Winner is the member selected by the most recent draw.
type Winner struct {
	DNI     string    `json:"dni"`
	Name    string    `json:"name"`
	DrawnAt time.Time `json:"drawn_at"`
}

// RaffleStatus summarises the raffle for polling-free dashboards.
type RaffleStatus struct {
	ParticipantCount int     `json:"participantCount"`
	OnlineCount      int     `json:"onlineCount"`
	Joined           bool    `json:"joined"`
	YouWon           bool    `json:"youWon"`
	Winner           *Winner `json:"winner"`
}

// Config mirrors the application config document. Admin-only fields such
// as the TOTP secret never appear on the wire.
type Config struct {
	PromoTitle string `json:"promoTitle"`
	PromoImage string `json:"promoImage"`

	RafflePrize    string `json:"rafflePrize"`
	RaffleRules    string `json:"raffleRules"`
	UserPanelTitle string `json:"userPanelTitle"`

	WinnerViewTitle        string `json:"winnerViewTitle"`
	WinnerViewSub          string `json:"winnerViewSub"`
	WinnerViewInstructions string `json:"winnerViewInstructions"`

	Card1Title string `json:"card1Title"`
	Card1Desc  string `json:"card1Desc"`
	Card2Title string `json:"card2Title"`
	Card2Desc  string `json:"card2Desc"`
	Card3Title string `json:"card3Title"`
	Card3Desc  string `json:"card3Desc"`

	AppStatus          string `json:"appStatus"`
	AdminAccessEnabled bool   `json:"adminAccessEnabled"`
	LicenseDays        int    `json:"licenseDays"`
	AutoBackup         bool   `json:"autoBackup"`

	MaintenanceTitle    string `json:"maintenanceTitle"`
	MaintenanceSubtitle string `json:"maintenanceSubtitle"`
	MaintenanceMessage  string `json:"maintenanceMessage"`

	LastSync *time.Time `json:"lastSync"`

	Winner *Winner `json:"winner"`
}

// ControlRequest toggles the operator switches on the config document.
// Nil fields are left unchanged.
type ControlRequest struct {
	AppStatus          *string `json:"appStatus,omitempty"`
	AdminAccessEnabled *bool   `json:"adminAccessEnabled,omitempty"`
	LicenseDays        *int    `json:"licenseDays,omitempty"`
	AutoBackup         *bool   `json:"autoBackup,omitempty"`
}

// Departure is one audit record of a member leaving the raffle.
type Departure struct {
	ID     string    `json:"id"`
	DNI    string    `json:"dni"`
	Name   string    `json:"name"`
	LeftAt time.Time `json:"leftAt"`
}

// UserSummary is one row of the admin member directory.
type UserSummary struct {
	DNI       string    `json:"dni"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExportDocument is the full backup produced by the export endpoint.
type ExportDocument struct {
	GeneratedAt  time.Time     `json:"generatedAt"`
	Config       Config        `json:"config"`
	Users        []UserSummary `json:"users"`
	Participants []Participant `json:"participants"`
	Departures   []Departure   `json:"departures"`
}

// MFAEnrollResponse carries the provisioning material for the super
// admin's authenticator app. The secret is shown exactly once.
type MFAEnrollResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	// Role is "user" or "model"
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatSource is a grounding citation attached to an assistant reply.
type ChatSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatReply is the assistant's answer to a chat request.
type ChatReply struct {
	Text    string       `json:"text"`
	Sources []ChatSource `json:"sources,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database,omitempty"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
