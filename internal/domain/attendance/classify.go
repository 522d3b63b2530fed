package attendance

// Status is the label assigned to a record, either by the backend or derived
// here from working hours.
type Status string

const (
	StatusAbsent         Status = "Absent"
	StatusHalfDay        Status = "Half Day"
	StatusEarlyLeave     Status = "Early Leave"
	StatusShortLeave     Status = "Short Leave"
	StatusPresent        Status = "Present"
	StatusOvertime       Status = "Overtime"
	StatusForgotCheckout Status = "Forgot Checkout"
)

// FullShiftHours is the working-hours target for a full shift. The backend
// derives WorkingHours against the same target, so the threshold ladder below
// is an integration contract, not a local convention.
const FullShiftHours = 9.0

const (
	absentBelowHours     = 4.0
	halfDayBelowHours    = 4.5
	earlyLeaveBelowHours = 8.5
	shortLeaveBelowHours = FullShiftHours
	overtimeAboveHours   = 9.05
)

// Classify assigns a status label from the threshold ladder, first match
// wins. A backend-supplied label short-circuits its band; the Short Leave
// band intentionally has no such shortcut, and hours in (9, 9.05] fall
// through to Present. Both quirks match the backend's ladder and must not be
// normalized without a product decision.
//
// Hours comparisons only apply once the employee has clocked out; a live
// record always lands in the default Present bucket.
func Classify(serverStatus string, hours float64, hasCheckout bool) Status {
	switch {
	case serverStatus == string(StatusAbsent) || (hasCheckout && hours < absentBelowHours):
		return StatusAbsent
	case serverStatus == string(StatusHalfDay) || (hasCheckout && hours < halfDayBelowHours):
		return StatusHalfDay
	case serverStatus == string(StatusEarlyLeave) || (hasCheckout && hours < earlyLeaveBelowHours):
		return StatusEarlyLeave
	case hasCheckout && hours < shortLeaveBelowHours:
		return StatusShortLeave
	case serverStatus == string(StatusOvertime) || (hasCheckout && hours > overtimeAboveHours):
		return StatusOvertime
	default:
		return StatusPresent
	}
}

// ClassifyRecord applies Classify to a record.
func ClassifyRecord(r Record) Status {
	return Classify(r.Status, r.WorkingHours, r.HasCheckout())
}

// Caution selects one band of the ladder for directory filtering.
type Caution string

const (
	CautionNone           Caution = ""
	CautionOvertime       Caution = "overtime"
	CautionEarlyLeave     Caution = "early_leave"
	CautionHalfDay        Caution = "half_day"
	CautionShortLeave     Caution = "short_leave"
	CautionForgotCheckout Caution = "forgot_checkout"
)

// Valid reports whether c is a known caution filter.
func (c Caution) Valid() bool {
	switch c {
	case CautionNone, CautionOvertime, CautionEarlyLeave, CautionHalfDay,
		CautionShortLeave, CautionForgotCheckout:
		return true
	}
	return false
}

// MatchesCaution re-applies the raw band predicate rather than the classified
// label, so broader bands include narrower ones (an early-leave filter also
// matches half-day hours). Forgot Checkout matches the backend status alone.
func MatchesCaution(r Record, c Caution) bool {
	switch c {
	case CautionNone:
		return true
	case CautionOvertime:
		return r.HasCheckout() && r.WorkingHours > overtimeAboveHours
	case CautionEarlyLeave:
		return r.HasCheckout() && r.WorkingHours < earlyLeaveBelowHours
	case CautionHalfDay:
		return r.HasCheckout() && r.WorkingHours < halfDayBelowHours
	case CautionShortLeave:
		return r.HasCheckout() && r.WorkingHours < shortLeaveBelowHours
	case CautionForgotCheckout:
		return r.Status == string(StatusForgotCheckout)
	}
	return false
}
