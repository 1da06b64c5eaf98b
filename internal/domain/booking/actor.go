package booking

import "github.com/levelupglow/salon-scheduler/internal/models"

// Actor is the authenticated principal performing an operation,
// passed explicitly into every usecase. The core performs no
// authentication itself.
type Actor struct {
	UserID    uint
	Role      string
	StylistID uint
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func (a Actor) IsStaff() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleStylist
}

// OwnsStylist reports whether the actor is the stylist itself (or an
// admin acting on their behalf).
func (a Actor) OwnsStylist(stylistID uint) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role == models.RoleStylist && a.StylistID == stylistID
}
