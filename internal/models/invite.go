package models

import "time"

// InviteStatus is the lifecycle state of a direct offer. Transitions are
// monotonic: pending -> accepted | rejected, accepted -> completed.
// Completed is terminal.
type InviteStatus string

const (
	InvitePending   InviteStatus = "pending"
	InviteAccepted  InviteStatus = "accepted"
	InviteRejected  InviteStatus = "rejected"
	InviteCompleted InviteStatus = "completed"
)

// Invite is a direct work offer from a citizen to a specific worker,
// bypassing the open job board. Contact fields for both parties are
// denormalized at creation time.
type Invite struct {
	ID             string       `json:"id" firestore:"-"`
	CitizenID      string       `json:"citizenId" firestore:"citizenId"`
	CitizenName    string       `json:"citizenName" firestore:"citizenName"`
	CitizenPhone   string       `json:"citizenPhone,omitempty" firestore:"citizenPhone,omitempty"`
	WorkerID       string       `json:"workerId" firestore:"workerId"`
	WorkerPhone    string       `json:"workerPhone,omitempty" firestore:"workerPhone,omitempty"`
	WorkType       string       `json:"workType" firestore:"workType"`
	CustomWorkType string       `json:"customWorkType,omitempty" firestore:"customWorkType,omitempty"`
	Price          int          `json:"price" firestore:"price"`
	Date           string       `json:"date" firestore:"date"`
	Description    string       `json:"description,omitempty" firestore:"description,omitempty"`
	Status         InviteStatus `json:"status" firestore:"status"`
	CreatedAt      time.Time    `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
