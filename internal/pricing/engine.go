package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"registration-engine/internal/model"
)

// quoter carries one computation's context: the immutable event definition,
// the date to compute against and the accumulated warning messages.
type quoter struct {
	cfg  *model.EventConfig
	asOf time.Time
	msgs []model.QuoteMessage
	seen map[string]bool
}

func (q *quoter) warn(code, message string) {
	q.msgs = append(q.msgs, model.QuoteMessage{
		ID:      len(q.msgs),
		Level:   model.LevelWarning,
		Code:    code,
		Message: message,
	})
}

// warnOnce deduplicates lookup warnings: several participants pointing at
// the same stale id produce a single message.
func (q *quoter) warnOnce(code, key, message string) {
	k := code + "/" + key
	if q.seen[k] {
		return
	}
	q.seen[k] = true
	q.warn(code, message)
}

// billsLodging reports whether the participant meets the required-field
// contract for a lodging value. A missing field resolves the value to 0
// silently; that is the form's live-total contract, not an error.
func (q *quoter) billsLodging(p model.Participant) bool {
	if q.cfg.FormType == model.FormEventOnly {
		return false
	}
	return p.BirthDate != "" && p.StayPeriodID != "" && p.AccommodationTypeID != ""
}

// billsEvent is the same contract for the event-participation value.
func (q *quoter) billsEvent(p model.Participant) bool {
	if q.cfg.FormType == model.FormLodgingOnly {
		return false
	}
	return p.BirthDate != "" && p.EventOptionID != ""
}

// Quote recomputes the full reservation price from scratch: per-participant
// lodging and event values with age rules and free-seat quotas applied,
// subtotals, coupon discount, payment surcharge and grand total. It is a
// pure function of its inputs — the caller invokes it after every form
// change and identical snapshots always produce identical results.
func Quote(cfg *model.EventConfig, req *model.QuoteRequest) *model.QuoteResponse {
	start := time.Now()

	asOf, ok := parseDate(req.AsOf)
	if !ok {
		n := time.Now().UTC()
		asOf = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	}

	q := &quoter{cfg: cfg, asOf: asOf, seen: make(map[string]bool)}

	// Age resolution for the whole snapshot, then one quota allocation per
	// domain. Quotas are per reservation: whether the third toddler is
	// free depends on the other participants, so allocation runs over the
	// full list, never per participant in isolation.
	ages := make([]int, len(req.Participants))
	hasAge := make([]bool, len(req.Participants))
	var lodgingSeats, eventSeats []seat
	for i, p := range req.Participants {
		ages[i], hasAge[i] = AgeOn(p.BirthDate, asOf)
		if q.billsLodging(p) {
			lodgingSeats = append(lodgingSeats, seat{index: i, age: ages[i], hasAge: hasAge[i]})
		}
		if q.billsEvent(p) {
			eventSeats = append(eventSeats, seat{index: i, age: ages[i], hasAge: hasAge[i]})
		}
	}
	lodgingAssign := allocate(cfg.AgeRules.Lodging, lodgingSeats)
	eventAssign := allocate(cfg.AgeRules.Event, eventSeats)

	participants := make([]model.ParticipantQuote, 0, len(req.Participants))
	var lodgingSubtotal, eventSubtotal float64
	for i, p := range req.Participants {
		pq := model.ParticipantQuote{ParticipantID: p.ID, Name: p.Name}
		if hasAge[i] {
			age := ages[i]
			pq.Age = &age
		}
		if a, billed := lodgingAssign[i]; billed {
			pq.LodgingValue = roundCents(math.Max(0, q.lodgingBase(p)*a.fraction))
			pq.LodgingFreeSeat = a.free
		}
		if a, billed := eventAssign[i]; billed {
			pq.EventValue = roundCents(math.Max(0, q.eventBase(p)*a.fraction))
			pq.EventFreeSeat = a.free
		}
		pq.Subtotal = roundCents(pq.LodgingValue + pq.EventValue)
		lodgingSubtotal += pq.LodgingValue
		eventSubtotal += pq.EventValue
		participants = append(participants, pq)
	}
	lodgingSubtotal = roundCents(lodgingSubtotal)
	eventSubtotal = roundCents(eventSubtotal)

	couponResult, discount := q.applyCoupon(req.CouponCode, lodgingSubtotal, eventSubtotal)

	surchargeFraction := 0.0
	if req.PaymentMethodID != "" {
		if pm := findPaymentMethod(cfg, req.PaymentMethodID); pm != nil {
			surchargeFraction = pm.SurchargeFraction
		} else {
			q.warnOnce(model.CodeUnknownPaymentMethod, req.PaymentMethodID,
				fmt.Sprintf("Payment method %q is not part of this event.", req.PaymentMethodID))
		}
	}

	preSurcharge := roundCents(math.Max(0, lodgingSubtotal+eventSubtotal-discount))
	total := roundCents(preSurcharge * (1 + surchargeFraction))

	if q.msgs == nil {
		q.msgs = []model.QuoteMessage{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.QuoteResponse{
		QuoteMetadata: model.QuoteMetadata{
			QuoteID:          uuid.New().String(),
			QuoteStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			QuoteCompletedAt: now.Format(time.RFC3339),
			QuoteDurationMs:  elapsed.Milliseconds(),
			AsOf:             asOf.Format("2006-01-02"),
		},
		QuoteResult: model.QuoteResult{
			Participants: participants,
			Coupon:       couponResult,
			Totals: model.Totals{
				LodgingSubtotal:   lodgingSubtotal,
				EventSubtotal:     eventSubtotal,
				CouponDiscount:    discount,
				PreSurchargeTotal: preSurcharge,
				Surcharge:         roundCents(total - preSurcharge),
				Total:             total,
			},
			Messages: q.msgs,
		},
	}
}

// applyCoupon resolves the entered code and computes the discount against
// the pool the coupon targets. A fixed discount never exceeds its base
// pool; a rejected or absent coupon discounts nothing.
func (q *quoter) applyCoupon(code string, lodgingSubtotal, eventSubtotal float64) (model.CouponResult, float64) {
	result := model.CouponResult{Code: code}

	coupon, rejection := resolveCoupon(q.cfg, code, q.asOf)
	if rejection != nil {
		q.warn(rejection.code, rejection.message)
		result.Message = rejection.message
		return result, 0
	}
	if coupon == nil {
		return result, 0
	}

	var base float64
	switch coupon.AppliesTo {
	case model.AppliesToTotal:
		base = lodgingSubtotal + eventSubtotal
	case model.AppliesToLodging:
		base = lodgingSubtotal
	case model.AppliesToEvent:
		base = eventSubtotal
	}

	var discount float64
	switch coupon.DiscountType {
	case model.DiscountPercentage:
		discount = roundCents(base * coupon.DiscountValue / 100)
	case model.DiscountFixed:
		discount = roundCents(math.Min(base, coupon.DiscountValue))
	}

	result.Applied = true
	result.Message = "Coupon applied successfully."
	result.Value = discount
	return result, discount
}
