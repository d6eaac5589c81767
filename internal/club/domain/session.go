package domain

// Tier is a session privilege level. Regular members authenticate with
// DNI + password; the two admin tiers elevate with a PIN, verified
// server-side against argon2 hashes (never stored in any client bundle).
type Tier string

const (
	TierUser       Tier = "user"
	TierAdmin      Tier = "admin"
	TierSuperAdmin Tier = "superadmin"
)

// AtLeast reports whether t grants the privileges of want.
// superadmin > admin > user.
func (t Tier) AtLeast(want Tier) bool {
	return t.rank() >= want.rank()
}

func (t Tier) rank() int {
	switch t {
	case TierSuperAdmin:
		return 3
	case TierAdmin:
		return 2
	case TierUser:
		return 1
	default:
		return 0
	}
}
