package pricing

import (
	"fmt"

	"registration-engine/internal/model"
)

func findStayPeriod(cfg *model.EventConfig, id string) *model.StayPeriod {
	for i := range cfg.StayPeriods {
		if cfg.StayPeriods[i].ID == id {
			return &cfg.StayPeriods[i]
		}
	}
	return nil
}

func findAccommodation(cfg *model.EventConfig, id string) *model.AccommodationType {
	for i := range cfg.AccommodationTypes {
		if cfg.AccommodationTypes[i].ID == id {
			return &cfg.AccommodationTypes[i]
		}
	}
	return nil
}

func findEventOption(opts []model.EventOption, id string) *model.EventOption {
	for i := range opts {
		if opts[i].ID == id {
			return &opts[i]
		}
	}
	return nil
}

func findPaymentMethod(cfg *model.EventConfig, id string) *model.PaymentMethod {
	for i := range cfg.PaymentMethods {
		if cfg.PaymentMethods[i].ID == id {
			return &cfg.PaymentMethods[i]
		}
	}
	return nil
}

// lodgingBase resolves the pre-discount lodging price for one participant:
// nightly rate times the period's night count. Unknown ids degrade to 0 and
// leave a warning for the caller.
func (q *quoter) lodgingBase(p model.Participant) float64 {
	period := findStayPeriod(q.cfg, p.StayPeriodID)
	if period == nil {
		q.warnOnce(model.CodeUnknownStayPeriod, p.StayPeriodID,
			fmt.Sprintf("Stay period %q is not part of this event.", p.StayPeriodID))
		return 0
	}
	acc := findAccommodation(q.cfg, p.AccommodationTypeID)
	if acc == nil {
		q.warnOnce(model.CodeUnknownAccommodation, p.AccommodationTypeID,
			fmt.Sprintf("Accommodation type %q is not part of this event.", p.AccommodationTypeID))
		return 0
	}
	return acc.NightlyRate * float64(period.Nights)
}

// eventBase resolves the pre-discount event-participation price. On the
// combined form the participant's stay period carries its own option list;
// the flat list is the fallback when the option is not priced per period.
func (q *quoter) eventBase(p model.Participant) float64 {
	if q.cfg.FormType == model.FormLodgingAndEvent && p.StayPeriodID != "" {
		if period := findStayPeriod(q.cfg, p.StayPeriodID); period != nil {
			if opt := findEventOption(period.EventOptions, p.EventOptionID); opt != nil {
				return opt.Price
			}
		}
	}
	if opt := findEventOption(q.cfg.EventOptions, p.EventOptionID); opt != nil {
		return opt.Price
	}
	q.warnOnce(model.CodeUnknownEventOption, p.EventOptionID,
		fmt.Sprintf("Event option %q is not part of this event.", p.EventOptionID))
	return 0
}
