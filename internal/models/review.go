package models

import "time"

// Review is a citizen's rating of a worker for a finished piece of work.
// One review per (jobId, workerId) pair is assumed by the client logic but
// not enforced by the store.
type Review struct {
	ID           string    `json:"id" firestore:"-"`
	JobID        string    `json:"jobId" firestore:"jobId"`
	WorkerID     string    `json:"workerId" firestore:"workerId"`
	CitizenID    string    `json:"citizenId" firestore:"citizenId"`
	ReviewerName string    `json:"reviewerName" firestore:"reviewerName"`
	Rating       int       `json:"rating" firestore:"rating"` // 1..5
	Comment      string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
