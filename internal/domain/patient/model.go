package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. The record is immutable after
// registration: staff either view it or delete it.
type Patient struct {
	ID             uuid.UUID `db:"patient_id" json:"patient_id"`
	Name           string    `db:"name" json:"name"`
	ContactNo      string    `db:"contact_no" json:"contact_no"`
	Address        string    `db:"address" json:"address"`
	WristbandID    *string   `db:"wristband_id" json:"wristband_id,omitempty"`
	DateRegistered time.Time `db:"date_registered" json:"date_registered"`
}

// NoWristband is the registration form's sentinel for "no wristband selected".
const NoWristband = "Assign Wristband"
