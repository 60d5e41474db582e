package model

// Form types supported by the registration form.
const (
	FormLodgingOnly     = "lodging_only"
	FormEventOnly       = "event_only"
	FormLodgingAndEvent = "lodging_and_event"
)

// EventConfig is the immutable event definition. It is loaded once at
// startup and passed explicitly into every computation; the engine never
// mutates it.
type EventConfig struct {
	FormType           string              `json:"form_type"`
	StayPeriods        []StayPeriod        `json:"stay_periods"`
	AccommodationTypes []AccommodationType `json:"accommodation_types"`
	EventOptions       []EventOption       `json:"event_options"`
	AgeRules           AgeRuleSet          `json:"age_rules"`
	Coupons            []Coupon            `json:"coupons"`
	PaymentMethods     []PaymentMethod     `json:"payment_methods"`
}

type StayPeriod struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Nights    int    `json:"nights"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// EventOptions nested under a period are used by the combined form,
	// where event participation is priced per stay period.
	EventOptions []EventOption `json:"event_options,omitempty"`
}

type AccommodationType struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NightlyRate float64 `json:"nightly_rate"`
}

type EventOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AgeRuleSet holds the ordered rule lists per pricing domain. Lodging and
// event pricing match and count free seats independently.
type AgeRuleSet struct {
	Lodging []AgeRule `json:"lodging"`
	Event   []AgeRule `json:"event"`
}

// AgeRule is one age bracket. Brackets are inclusive on both ends; a nil
// MaxAge means unbounded. Rule lists are evaluated in array order and the
// first bracket containing the participant's age wins.
type AgeRule struct {
	MinAge int  `json:"min_age"`
	MaxAge *int `json:"max_age,omitempty"`
	// PriceFraction multiplies the base price: 1 is full adult price,
	// 0 is free.
	PriceFraction float64 `json:"price_fraction"`
	// FreeSeatLimit caps how many participants in this bracket are priced
	// zero per reservation. Zero or absent means no quota.
	FreeSeatLimit int `json:"free_seat_limit,omitempty"`
	// Excess prices the participants in this bracket beyond the free-seat
	// limit. Absent, the rule's own PriceFraction applies to them.
	Excess *ExcessRule `json:"excess,omitempty"`
}

type ExcessRule struct {
	PriceFraction float64 `json:"price_fraction"`
}

// Contains reports whether age falls inside the bracket.
func (r AgeRule) Contains(age int) bool {
	if age < r.MinAge {
		return false
	}
	return r.MaxAge == nil || age <= *r.MaxAge
}

// HasQuota reports whether this rule carries a free-seat quota.
func (r AgeRule) HasQuota() bool {
	return r.FreeSeatLimit > 0
}

// Coupon discount types and applicability targets.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"

	AppliesToTotal   = "total"
	AppliesToLodging = "lodging"
	AppliesToEvent   = "event"
)

type Coupon struct {
	Code         string `json:"code"`
	DiscountType string `json:"discount_type"`
	// DiscountValue is percentage points for percentage coupons (10 means
	// 10%) and a currency amount for fixed coupons.
	DiscountValue float64 `json:"discount_value"`
	AppliesTo     string  `json:"applies_to"`
	Active        bool    `json:"active"`
	// ValidUntil is YYYY-MM-DD; empty means no expiry.
	ValidUntil string `json:"valid_until,omitempty"`
}

type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// SurchargeFraction is the gateway fee applied multiplicatively to the
	// post-discount total: 0.035 means 3.5%.
	SurchargeFraction float64 `json:"surcharge_fraction"`
}
