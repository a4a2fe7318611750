package wristband

import "strings"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Wristband is a tracked RFID device. The id is the device's printed
// label (e.g. WB001), not a surrogate key.
type Wristband struct {
	ID        string  `db:"wristband_id" json:"wristband_id"`
	RFID      string  `db:"rfid" json:"rfid"`
	Status    string  `db:"status" json:"status"`
	Battery   int     `db:"battery" json:"battery"`
	PatientID *string `db:"patient_id" json:"patient_id,omitempty"`
}

// BatteryClass buckets the battery percentage for display.
func (w *Wristband) BatteryClass() string {
	switch {
	case w.Battery >= 70:
		return "high"
	case w.Battery >= 30:
		return "mid"
	default:
		return "low"
	}
}

// MatchesSearch reports whether the term appears in any of the
// wristband's displayed fields. Matching is case-insensitive.
func (w *Wristband) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	patientID := ""
	if w.PatientID != nil {
		patientID = *w.PatientID
	}
	haystack := strings.ToLower(w.ID + " " + w.RFID + " " + w.Status + " " + patientID)
	return strings.Contains(haystack, strings.ToLower(term))
}

// Filter returns the wristbands matching the search term, preserving order.
func Filter(items []*Wristband, term string) []*Wristband {
	if term == "" {
		return items
	}
	var out []*Wristband
	for _, w := range items {
		if w.MatchesSearch(term) {
			out = append(out, w)
		}
	}
	return out
}

// ValidStatus reports whether s is a recognized wristband status.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
