package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusUnpaid = "unpaid"
	StatusPaid   = "paid"
)

// Bill is a charge issued to a patient. The patient reference is a
// plain string so the ledger survives patient deletion.
type Bill struct {
	ID         uuid.UUID `db:"billing_id" json:"billing_id"`
	PatientID  string    `db:"patient_id" json:"patient_id"`
	Amount     float64   `db:"amount" json:"amount"`
	Status     string    `db:"status" json:"status"`
	DateIssued time.Time `db:"date_issued" json:"date_issued"`
}

// ParseAmount converts a form amount into a billable value. Zero is a
// valid charge; negative amounts and non-numeric input are not.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount cannot be negative")
	}
	return v, nil
}
