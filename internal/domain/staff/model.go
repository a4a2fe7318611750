package staff

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Staff is a console account. PasswordHash is a bcrypt hash and never
// leaves the server.
type Staff struct {
	ID           uuid.UUID `db:"staff_id" json:"staff_id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
