package models

import "time"

// JobStatus is the lifecycle state of a posted job.
type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

// Job is an openly posted piece of work a citizen wants done.
type Job struct {
	ID           string    `json:"id" firestore:"-"`
	PostedBy     string    `json:"postedBy" firestore:"postedBy"`
	PostedByName string    `json:"postedByName" firestore:"postedByName"`
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description" firestore:"description"`
	Category     string    `json:"category" firestore:"category"`
	Budget       int       `json:"budget" firestore:"budget"`
	Location     string    `json:"location" firestore:"location"` // pincode
	Status       JobStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
