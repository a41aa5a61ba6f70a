package models

type SuggestionStatus string

const (
	SuggestionStatusPending     SuggestionStatus = "pending"
	SuggestionStatusReviewed    SuggestionStatus = "reviewed"
	SuggestionStatusImplemented SuggestionStatus = "implemented"
	SuggestionStatusRejected    SuggestionStatus = "rejected"
)

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusReviewed,
		SuggestionStatusImplemented, SuggestionStatusRejected:
		return true
	}
	return false
}

type TeamApplicationStatus string

const (
	TeamApplicationStatusPending  TeamApplicationStatus = "pending"
	TeamApplicationStatusReviewed TeamApplicationStatus = "reviewed"
	TeamApplicationStatusAccepted TeamApplicationStatus = "accepted"
	TeamApplicationStatusRejected TeamApplicationStatus = "rejected"
)

func (s TeamApplicationStatus) IsValid() bool {
	switch s {
	case TeamApplicationStatusPending, TeamApplicationStatusReviewed,
		TeamApplicationStatusAccepted, TeamApplicationStatusRejected:
		return true
	}
	return false
}

type RecoveryStatus string

const (
	RecoveryStatusPending RecoveryStatus = "pending"
	RecoveryStatusUsed    RecoveryStatus = "used"
	RecoveryStatusExpired RecoveryStatus = "expired"
)
