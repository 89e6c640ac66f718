package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

type ApprovalEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Approved  *bool  `json:"approved,omitempty"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyApprovalRequested announces a fresh admin role request so
// dashboards can surface it without polling.
func NotifyApprovalRequested(u user.User) {
	broadcast(ApprovalEvent{
		Type:      "approval_requested",
		UserID:    u.ID.String(),
		Email:     u.Email,
		Name:      u.FullName(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// NotifyApprovalDecided announces the outcome of a request.
func NotifyApprovalDecided(u user.User, approved bool) {
	broadcast(ApprovalEvent{
		Type:      "approval_decided",
		UserID:    u.ID.String(),
		Email:     u.Email,
		Name:      u.FullName(),
		Approved:  &approved,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func broadcast(evt ApprovalEvent) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
