package marketplace

import "time"

// FundiProfile is the provider-side half of a user account.
//
// Services lists the service taxonomy entries the fundi is qualified to
// perform; eligibility matching compares normalized identifiers only.
type FundiProfile struct {
	Services        []EntityRef `json:"services,omitempty"`
	Bio             string      `json:"bio,omitempty"`
	ExperienceYears int         `json:"experienceYears,omitempty"`
	Verified        bool        `json:"verified,omitempty"`
	Rating          float64     `json:"rating,omitempty"`
	CompletedJobs   int         `json:"completedJobs,omitempty"`
}

// User is a platform account. An account may act as a customer, a fundi, or
// both; the Role in pkg/viewmodel is always relative to a specific job, not
// to these account-wide flags.
type User struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name,omitempty"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	IsCustomer   bool          `json:"isCustomer,omitempty"`
	IsFundi      bool          `json:"isFundi,omitempty"`
	FundiProfile *FundiProfile `json:"fundiProfile,omitempty"`
	CreatedAt    time.Time     `json:"createdAt,omitempty"`
}

// OffersService reports whether the user's fundi profile lists the given
// service identifier. False for users without a fundi profile.
func (u *User) OffersService(serviceID string) bool {
	if u == nil || u.FundiProfile == nil || serviceID == "" {
		return false
	}
	for _, ref := range u.FundiProfile.Services {
		if ref.Is(serviceID) {
			return true
		}
	}
	return false
}
