package models

import "time"

// IntentKind says which two-step completion a CompletionIntent tracks.
type IntentKind string

const (
	IntentInvite IntentKind = "invite"
	IntentJob    IntentKind = "job"
)

// IntentStage tracks how far a two-step completion got.
type IntentStage string

const (
	// IntentPending: intent persisted, status write not yet done.
	IntentPending IntentStage = "pending"
	// IntentStatusDone: status write succeeded, review write still owed.
	IntentStatusDone IntentStage = "statusDone"
	// IntentFulfilled: both writes succeeded. Terminal.
	IntentFulfilled IntentStage = "fulfilled"
)

// CompletionIntent is persisted before the first write of a
// close-then-review flow so a failed review write leaves a retryable record
// instead of a silent inconsistency.
type CompletionIntent struct {
	ID        string     `json:"id" firestore:"-"`
	Kind      IntentKind `json:"kind" firestore:"kind"`
	TargetID  string     `json:"targetId" firestore:"targetId"` // invite or job document ID
	JobID     string     `json:"jobId" firestore:"jobId"`       // review attribution key
	WorkerID  string     `json:"workerId" firestore:"workerId"`
	CitizenID string     `json:"citizenId" firestore:"citizenId"`
	// CitizenName is captured at creation so a retried review keeps the
	// reviewer's display name.
	CitizenName string      `json:"citizenName" firestore:"citizenName"`
	Stage       IntentStage `json:"stage" firestore:"stage"`
	CreatedAt   time.Time   `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
