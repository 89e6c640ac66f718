package account

import "time"

// Reason strings reported by CanLogin. Kept stable because they surface
// in admin diagnostics and the checkuser CLI.
const (
	ReasonAdminRoleRequired  = "admin privileges required"
	ReasonAdminNotApproved   = "admin approval not granted"
	ReasonAccountLocked      = "account locked"
	ReasonAccountDeactivated = "account deactivated"
)

// Decision is the outcome of a login-eligibility check. Reasons lists
// every violated condition so callers can report them all at once.
type Decision struct {
	Allowed bool     `json:"allowed"`
	Reasons []string `json:"reasons"`
}

// CanLogin evaluates whether the account may log in with the requested
// role. It does not short-circuit: every violation is accumulated. This
// is the same rule set the auth service enforces at login time; the two
// must stay in agreement.
func CanLogin(s State, requestedRole string, now time.Time) Decision {
	reasons := make([]string, 0, 4)

	if requestedRole == RoleAdmin && s.Role != RoleAdmin {
		reasons = append(reasons, ReasonAdminRoleRequired)
	}
	if requestedRole == RoleAdmin && s.Role == RoleAdmin && s.AdminApprovalStatus != ApprovalApproved {
		reasons = append(reasons, ReasonAdminNotApproved)
	}
	if s.Locked(now) {
		reasons = append(reasons, ReasonAccountLocked)
	}
	if !s.IsActive {
		reasons = append(reasons, ReasonAccountDeactivated)
	}

	return Decision{Allowed: len(reasons) == 0, Reasons: reasons}
}
