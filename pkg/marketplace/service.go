package marketplace

// Service is a node in the service taxonomy (plumbing, electrical, ...).
// The core logic consumes it for identifier equality only; sub-service
// structure and pricing are display data.
type Service struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	SubServices []string `json:"subServices,omitempty"`
}

// Notification is a platform notification addressed to the current user.
type Notification struct {
	ID        string `json:"_id"`
	Type      string `json:"type,omitempty"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	JobID     string `json:"jobId,omitempty"`
	Read      bool   `json:"read,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Review is a customer's rating of a completed job.
type Review struct {
	ID        string    `json:"_id"`
	JobID     EntityRef `json:"jobId"`
	FundiID   EntityRef `json:"fundiId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt string    `json:"createdAt,omitempty"`
}
