package model

type QuoteResponse struct {
	QuoteMetadata QuoteMetadata `json:"quote_metadata"`
	QuoteResult   QuoteResult   `json:"quote_result"`
}

type QuoteMetadata struct {
	QuoteID          string `json:"quote_id"`
	QuoteStartedAt   string `json:"quote_started_at"`
	QuoteCompletedAt string `json:"quote_completed_at"`
	QuoteDurationMs  int64  `json:"quote_duration_ms"`
	// AsOf is the date the quote was computed against.
	AsOf string `json:"as_of"`
}

type QuoteResult struct {
	Participants []ParticipantQuote `json:"participants"`
	Coupon       CouponResult       `json:"coupon"`
	Totals       Totals             `json:"totals"`
	Messages     []QuoteMessage     `json:"messages"`
}

// ParticipantQuote is the per-participant breakdown.
type ParticipantQuote struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name,omitempty"`
	// Age is nil when the birth date is absent or unparseable.
	Age          *int    `json:"age"`
	LodgingValue float64 `json:"lodging_value"`
	EventValue   float64 `json:"event_value"`
	Subtotal     float64 `json:"subtotal"`
	// LodgingFreeSeat / EventFreeSeat flag a zero price that came from a
	// free-seat quota rather than a zero-fraction bracket without quota.
	LodgingFreeSeat bool `json:"lodging_free_seat,omitempty"`
	EventFreeSeat   bool `json:"event_free_seat,omitempty"`
}

// CouponResult tells the caller whether the supplied code applied and, when
// it did not, a human-readable reason (mirrored in Messages with a code).
type CouponResult struct {
	Code    string  `json:"code,omitempty"`
	Applied bool    `json:"applied"`
	Message string  `json:"message,omitempty"`
	Value   float64 `json:"value"`
}

type Totals struct {
	LodgingSubtotal   float64 `json:"lodging_subtotal"`
	EventSubtotal     float64 `json:"event_subtotal"`
	CouponDiscount    float64 `json:"coupon_discount"`
	PreSurchargeTotal float64 `json:"pre_surcharge_total"`
	Surcharge         float64 `json:"surcharge"`
	Total             float64 `json:"total"`
}

// ErrorResponse is the transport-level error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
