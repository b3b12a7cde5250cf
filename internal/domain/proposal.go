package domain

import "time"

type ProposalStatus string

const (
	ProposalStatusOpen       ProposalStatus = "OPEN"
	ProposalStatusInProgress ProposalStatus = "INPROG"
	ProposalStatusClosed     ProposalStatus = "CLOSED"
)

// Valid reports whether s is one of the three proposal statuses.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusOpen, ProposalStatusInProgress, ProposalStatusClosed:
		return true
	}
	return false
}

// Label returns the human-readable form used on rendered pages.
func (s ProposalStatus) Label() string {
	switch s {
	case ProposalStatusOpen:
		return "Open"
	case ProposalStatusInProgress:
		return "In Progress"
	case ProposalStatusClosed:
		return "Closed"
	}
	return string(s)
}

type Proposal struct {
	ID             int32              `json:"id"`
	Slug           string             `json:"slug"`
	OwnerToken     string             `json:"-"` // bearer secret, only ever sent to the creator by email
	CreatedByName  string             `json:"created_by_name"`
	CreatedByEmail string             `json:"created_by_email"`
	Title          string             `json:"title"`
	Summary        string             `json:"summary"`
	Background     string             `json:"background,omitempty"`
	Aims           string             `json:"aims,omitempty"`
	Status         ProposalStatus     `json:"status"`
	Tags           []Tag              `json:"tags,omitempty"`
	Questions      []ProposalQuestion `json:"questions,omitempty"`
	SignupCount    int32              `json:"signup_count"`
	CreatedAt      time.Time          `json:"created_at"`
}

type ProposalQuestion struct {
	ID         int32  `json:"id"`
	ProposalID int32  `json:"proposal_id"`
	Prompt     string `json:"prompt"`
	IsRequired bool   `json:"is_required"`
	SortOrder  int32  `json:"sort_order"`
}
