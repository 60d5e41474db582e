package pricing

import (
	"strings"
	"time"

	"registration-engine/internal/model"
)

// couponRejection explains why a supplied code produced no discount. It is
// surfaced as a warning message plus a human-readable note on the coupon
// result, never as an error.
type couponRejection struct {
	code    string
	message string
}

// resolveCoupon matches the code against the configured coupons,
// case-insensitively, and checks the active flag and expiry date. A valid
// coupon is returned whole; anything else yields a rejection. An empty code
// means no coupon was entered and is not a rejection.
func resolveCoupon(cfg *model.EventConfig, code string, asOf time.Time) (*model.Coupon, *couponRejection) {
	if code == "" {
		return nil, nil
	}
	if len(cfg.Coupons) == 0 {
		return nil, &couponRejection{model.CodeCouponNotFound, "No coupons are available for this event."}
	}
	for i := range cfg.Coupons {
		c := &cfg.Coupons[i]
		if !strings.EqualFold(c.Code, code) {
			continue
		}
		if !c.Active {
			return nil, &couponRejection{model.CodeCouponInactive, "This coupon is no longer active."}
		}
		if c.ValidUntil != "" {
			if expiry, ok := parseDate(c.ValidUntil); ok && asOf.After(expiry) {
				return nil, &couponRejection{model.CodeCouponExpired, "This coupon has expired."}
			}
		}
		return c, nil
	}
	return nil, &couponRejection{model.CodeCouponNotFound, "Invalid or unknown coupon."}
}
