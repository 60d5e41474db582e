package model

// QuoteRequest is the full input snapshot for one pricing computation. The
// caller resends it after every relevant form change; the engine keeps no
// state between calls.
type QuoteRequest struct {
	Participants    []Participant `json:"participants"`
	CouponCode      string        `json:"coupon_code,omitempty"`
	PaymentMethodID string        `json:"payment_method_id,omitempty"`
	// AsOf pins "today" (YYYY-MM-DD) for age computation and coupon
	// expiry, making quotes reproducible. Empty means the current date.
	AsOf string `json:"as_of,omitempty"`
}
