package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a logged SMS message to a patient. The log records
// what was sent; delivery is handled by an external gateway.
type Notification struct {
	ID        uuid.UUID `db:"notification_id" json:"notification_id"`
	PatientID string    `db:"patient_id" json:"patient_id"`
	Message   string    `db:"message" json:"message"`
	DateSent  time.Time `db:"date_sent" json:"date_sent"`
}
