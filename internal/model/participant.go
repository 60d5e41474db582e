package model

// Participant is one person on the reservation, as currently filled in on
// the form. Every field beyond ID may still be empty; each computation
// states which fields it requires and degrades to zero when they are
// missing. The caller owns the list and resends the full snapshot on every
// recomputation — list order is the tie-break order for quota allocation.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	// BirthDate is YYYY-MM-DD; empty while the field is unfilled.
	BirthDate           string `json:"birth_date,omitempty"`
	StayPeriodID        string `json:"stay_period_id,omitempty"`
	AccommodationTypeID string `json:"accommodation_type_id,omitempty"`
	EventOptionID       string `json:"event_option_id,omitempty"`
}
