package domain

import "time"

type SignupStatus string

const (
	SignupStatusPending  SignupStatus = "PENDING"
	SignupStatusApproved SignupStatus = "APPROVED"
	SignupStatusRejected SignupStatus = "REJECTED"
)

// Label returns the human-readable form shown on the owner dashboard.
func (s SignupStatus) Label() string {
	switch s {
	case SignupStatusPending:
		return "Pending"
	case SignupStatusApproved:
		return "Approved"
	case SignupStatusRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

type Signup struct {
	ID             int32          `json:"id"`
	ProposalID     int32          `json:"proposal_id"`
	VolunteerName  string         `json:"volunteer_name"`
	VolunteerEmail string         `json:"volunteer_email"`
	InterestReason string         `json:"interest_reason,omitempty"`
	Status         SignupStatus   `json:"status"`
	DecidedAt      *time.Time     `json:"decided_at,omitempty"` // stamped when status leaves PENDING
	CreatedAt      time.Time      `json:"created_at"`
	Answers        []SignupAnswer `json:"answers,omitempty"`
}

type SignupAnswer struct {
	ID         int32  `json:"id"`
	SignupID   int32  `json:"signup_id"`
	QuestionID int32  `json:"question_id"`
	Text       string `json:"text"`
	Prompt     string `json:"prompt,omitempty"` // populated when fetching signups for the dashboard
}
