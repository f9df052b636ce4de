package models

import "time"

// Role of a profile. Citizens post jobs, workers take them.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleWorker  Role = "worker"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleCitizen || r == RoleWorker
}

// WorkerCategories is the fixed set of service categories. "Other" is the
// onboarding default and must stay last.
var WorkerCategories = []string{
	"Plumber",
	"Electrician",
	"Carpenter",
	"Painter",
	"Maid/Helper",
	"Driver",
	"Gardener",
	"Mason",
	"AC Repair",
	"Appliance Repair",
	"Tutor",
	"Other",
}

// DefaultWorkerCategory is assigned when a worker finishes onboarding before
// editing their profile.
const DefaultWorkerCategory = "Other"

// Identity is the authentication-subsystem record for a logged-in caller,
// distinct from the domain profile stored in Firestore.
type Identity struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName,omitempty"`
	PhotoURL      string `json:"photoURL,omitempty"`
	Phone         string `json:"phone,omitempty"`
	PhoneVerified bool   `json:"phoneVerified"`
}

// UserProfile is the domain profile shared by citizens and workers.
// The document ID in the users collection is the Firebase Auth UID.
type UserProfile struct {
	ID                 string    `json:"id" firestore:"-"`
	Email              string    `json:"email" firestore:"email"`
	DisplayName        string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	PhotoURL           string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	Role               Role      `json:"role" firestore:"role"`
	Pincode            string    `json:"pincode" firestore:"pincode"`
	Phone              string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	PhoneVerified      bool      `json:"phoneVerified" firestore:"phoneVerified"`
	VerificationMethod string    `json:"verificationMethod,omitempty" firestore:"verificationMethod,omitempty"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt          time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// WorkerProfile holds the worker-only fields. It shares its document ID with
// the matching UserProfile (1:1 join key) and exists only when role=worker.
type WorkerProfile struct {
	ID           string   `json:"id" firestore:"-"`
	Category     string   `json:"category" firestore:"category"`
	Experience   int      `json:"experience" firestore:"experience"`
	Languages    []string `json:"languages,omitempty" firestore:"languages,omitempty"`
	ServiceArea  []string `json:"serviceArea,omitempty" firestore:"serviceArea,omitempty"`
	DailyRateMin int      `json:"dailyRateMin" firestore:"dailyRateMin"`
	DailyRateMax int      `json:"dailyRateMax" firestore:"dailyRateMax"`
	Bio          string   `json:"bio,omitempty" firestore:"bio,omitempty"`
	Rating       float64  `json:"rating,omitempty" firestore:"rating,omitempty"`
	IsAvailable  bool     `json:"isAvailable" firestore:"isAvailable"`
}

// Profile is the merged view handed to the rest of the application: the
// UserProfile plus, for workers, the worker document sharing the same ID.
// Worker stays nil for citizens and for workers whose worker document is
// absent (an expected state, not an error).
type Profile struct {
	UserProfile
	Worker *WorkerProfile `json:"worker,omitempty"`
}

// Session is the resolved "who is logged in" view. A nil Session means
// anonymous. Profile is nil when the caller is authenticated but has not
// completed onboarding.
type Session struct {
	Identity *Identity `json:"identity"`
	Profile  *Profile  `json:"profile,omitempty"`
}
