package job

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive  = "active"
	StatusExpired = "expired"
	StatusDraft   = "draft"
	StatusPaused  = "paused"
)

var (
	JobTypes         = []string{"full-time", "part-time", "contract", "freelance", "internship"}
	WorkModes        = []string{"remote", "on-site", "hybrid"}
	ExperienceLevels = []string{"entry", "junior", "mid", "senior", "lead", "executive"}
)

type Salary struct {
	Min      int64  `json:"min,omitempty"`
	Max      int64  `json:"max,omitempty"`
	Currency string `json:"currency"`
}

type Job struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	JobType             string     `json:"job_type"`
	WorkMode            string     `json:"work_mode"`
	Experience          string     `json:"experience"`
	Salary              Salary     `json:"salary"`
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Skills              []string   `json:"skills"`
	Benefits            []string   `json:"benefits"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	ExpiryDate          time.Time  `json:"expiry_date"`
	Status              string     `json:"status"`
	ContactEmail        string     `json:"contact_email"`
	IsActive            bool       `json:"is_active"`
	Views               int        `json:"views"`
	Applications        int        `json:"applications"`
	CreatedBy           uuid.UUID  `json:"created_by"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Expired reports whether the posting is past its expiry date.
func (j Job) Expired(now time.Time) bool {
	return !j.ExpiryDate.IsZero() && !j.ExpiryDate.After(now)
}

// FormattedSalary renders the salary range for display, "Negotiable" when
// neither bound is set.
func (j Job) FormattedSalary() string {
	switch {
	case j.Salary.Min == 0 && j.Salary.Max == 0:
		return "Negotiable"
	case j.Salary.Min > 0 && j.Salary.Max > 0:
		return j.Salary.Currency + " " + groupDigits(j.Salary.Min) + " - " + groupDigits(j.Salary.Max)
	case j.Salary.Min > 0:
		return j.Salary.Currency + " " + groupDigits(j.Salary.Min) + "+"
	default:
		return "Up to " + j.Salary.Currency + " " + groupDigits(j.Salary.Max)
	}
}

func groupDigits(v int64) string {
	s := strconv.FormatInt(v, 10)
	if v < 0 || len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

func ValidJobType(v string) bool    { return containsString(JobTypes, v) }
func ValidWorkMode(v string) bool   { return containsString(WorkModes, v) }
func ValidExperience(v string) bool { return containsString(ExperienceLevels, v) }

func ValidStatus(v string) bool {
	switch v {
	case StatusActive, StatusExpired, StatusDraft, StatusPaused:
		return true
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, it := range list {
		if it == v {
			return true
		}
	}
	return false
}
