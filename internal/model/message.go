package model

// QuoteMessage surfaces a degraded computation to the caller: a rejected
// coupon, an id that resolved to nothing. Nothing in the engine is fatal,
// so every message is a warning.
type QuoteMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const LevelWarning = "WARNING"

const (
	CodeCouponNotFound       = "COUPON_NOT_FOUND"
	CodeCouponInactive       = "COUPON_INACTIVE"
	CodeCouponExpired        = "COUPON_EXPIRED"
	CodeUnknownStayPeriod    = "UNKNOWN_STAY_PERIOD"
	CodeUnknownAccommodation = "UNKNOWN_ACCOMMODATION_TYPE"
	CodeUnknownEventOption   = "UNKNOWN_EVENT_OPTION"
	CodeUnknownPaymentMethod = "UNKNOWN_PAYMENT_METHOD"
)
