package models

import "time"

// ApplicationStatus is the decision state of a worker's application.
// Transitions are monotonic: pending -> accepted | rejected.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a worker's response to an openly posted Job. The job and
// worker display fields are denormalized at creation time.
type Application struct {
	ID          string            `json:"id" firestore:"-"`
	JobID       string            `json:"jobId" firestore:"jobId"`
	WorkerID    string            `json:"workerId" firestore:"workerId"`
	Status      ApplicationStatus `json:"status" firestore:"status"`
	JobTitle    string            `json:"jobTitle" firestore:"jobTitle"`
	JobLocation string            `json:"jobLocation" firestore:"jobLocation"`
	WorkerName  string            `json:"workerName" firestore:"workerName"`
	WorkerPhone string            `json:"workerPhone" firestore:"workerPhone"`
	CreatedAt   time.Time         `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
