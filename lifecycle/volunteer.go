package lifecycle

import (
	"strings"
	"time"

	"github.com/shreya029/foodshare/schema"
)

// NewVolunteer validates a registration and starts an empty reward ledger
func NewVolunteer(v *schema.Volunteer, now time.Time) error {
	v.Email = strings.TrimSpace(v.Email)
	v.Stars = 0
	v.Rewards = []string{}
	v.CreatedAt = now

	fields := []struct {
		name  string
		value string
	}{
		{"fullName", v.FullName},
		{"email", v.Email},
		{"phone", v.Phone},
		{"city", v.City},
		{"roles", v.Roles},
		{"availability", v.Availability},
		{"vehicle", v.Vehicle},
		{"motivation", v.Motivation},
		{"emergencyContact", v.EmergencyContact},
	}

	missing := []string{}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return MissingFieldsError{Fields: missing}
	}
	return nil
}

// ValidateReward checks a reward label before it is appended to a ledger
func ValidateReward(label string) error {
	if strings.TrimSpace(label) == "" {
		return ErrEmptyReward
	}
	return nil
}
