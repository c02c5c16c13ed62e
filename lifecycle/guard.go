package lifecycle

import "fmt"

type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleAdmin     Role = "admin"
)

// Identity is the authenticated caller of an operation
type Identity struct {
	UserID  string
	Role    Role
	Address string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanMutate permits the owner of a record or an admin
func CanMutate(owner string, caller Identity) bool {
	if caller.IsAdmin() {
		return true
	}
	return owner != "" && owner == caller.UserID
}

// Authorize is CanMutate reported as an error
func Authorize(owner string, caller Identity) error {
	if CanMutate(owner, caller) {
		return nil
	}
	return fmt.Errorf("user %s is not authorized to modify this record: %w", caller.UserID, ErrForbidden)
}
