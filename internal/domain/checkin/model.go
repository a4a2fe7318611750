package checkin

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn records a patient tapping in at the clinic. Entries are
// append-only; the patient reference is kept as a plain string so the
// ledger survives patient deletion.
type CheckIn struct {
	ID          uuid.UUID `db:"checkin_id" json:"checkin_id"`
	PatientID   string    `db:"patient_id" json:"patient_id"`
	CheckinTime time.Time `db:"checkin_time" json:"checkin_time"`
}

// DayBounds returns the inclusive start and end instants of the local
// calendar day containing t, matching the ledger's day-window queries.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := time.Date(y, m, d, 23, 59, 59, 999000000, t.Location())
	return start, end
}
