package models

// LoginRequest carries email/password credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest creates an identity and immediately logs it in.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// OnboardingRequest completes a fresh identity's profile.
type OnboardingRequest struct {
	Role    Role   `json:"role" binding:"required"`
	Pincode string `json:"pincode" binding:"required,len=6,numeric"`
}

// UpdateProfileRequest edits the caller's profile. Worker-only fields are
// ignored for citizens.
type UpdateProfileRequest struct {
	PhotoURL     *string  `json:"photoURL,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Experience   *int     `json:"experience,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	ServiceArea  []string `json:"serviceArea,omitempty"`
	DailyRateMin *int     `json:"dailyRateMin,omitempty"`
	DailyRateMax *int     `json:"dailyRateMax,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
}

// PostJobRequest creates an open job.
type PostJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Budget      int    `json:"budget" binding:"required,gt=0"`
	Location    string `json:"location" binding:"required,len=6,numeric"`
}

// OfferRequest creates a direct invite from a citizen to a worker.
type OfferRequest struct {
	WorkerID       string `json:"workerId" binding:"required"`
	WorkType       string `json:"workType" binding:"required"`
	CustomWorkType string `json:"customWorkType,omitempty"`
	Price          int    `json:"price" binding:"required,gt=0"`
	Date           string `json:"date" binding:"required"`
	Description    string `json:"description,omitempty"`
}

// StatusUpdateRequest sets a new status on an application or invite.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReviewRequest is the rating collected when completing a job or invite.
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// CompleteRequest closes a job for an accepted worker and submits the review
// in one call.
type CompleteRequest struct {
	WorkerID string        `json:"workerId" binding:"required"`
	Review   ReviewRequest `json:"review" binding:"required"`
}
