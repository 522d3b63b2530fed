package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify_BoundaryExactness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		hours       float64
		hasCheckout bool
		want        Status
	}{
		{"just under absent threshold", 3.99, true, StatusAbsent},
		{"exactly 4h is half day", 4.0, true, StatusHalfDay},
		{"exactly 4.5h is early leave", 4.5, true, StatusEarlyLeave},
		{"exactly 8.5h is short leave", 8.5, true, StatusShortLeave},
		{"exactly 9h is present", 9.0, true, StatusPresent},
		{"9.05h falls in the dead zone", 9.05, true, StatusPresent},
		{"just over overtime threshold", 9.06, true, StatusOvertime},
		{"zero hours", 0, true, StatusAbsent},
		{"live record never classified by hours", 9.0, false, StatusPresent},
		{"live record with low hours stays present", 1.5, false, StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify("", tt.hours, tt.hasCheckout))
		})
	}
}

func TestClassify_ServerLabelShortCircuits(t *testing.T) {
	t.Parallel()

	// The backend label wins in its band even when hours disagree.
	assert.Equal(t, StatusAbsent, Classify("Absent", 10, true))
	assert.Equal(t, StatusHalfDay, Classify("Half Day", 10, true))
	assert.Equal(t, StatusEarlyLeave, Classify("Early Leave", 10, true))
	assert.Equal(t, StatusOvertime, Classify("Overtime", 0, false))

	// Short Leave has no label shortcut; hours decide instead.
	assert.Equal(t, StatusOvertime, Classify("Short Leave", 9.5, true))
	assert.Equal(t, StatusShortLeave, Classify("Short Leave", 8.7, true))
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	for _, hours := range []float64{0, 3.99, 4, 4.5, 8.5, 9, 9.05, 9.06, 12} {
		for _, hasCheckout := range []bool{true, false} {
			first := Classify("", hours, hasCheckout)
			second := Classify("", hours, hasCheckout)
			assert.Equal(t, first, second, "hours=%v hasCheckout=%v", hours, hasCheckout)
		}
	}
}

func TestMatchesCaution(t *testing.T) {
	t.Parallel()

	out := time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)
	closed := func(hours float64) Record {
		return Record{EmployeeID: "emp-1", WorkingHours: hours, CheckOut: &out}
	}

	assert.True(t, MatchesCaution(closed(10), CautionOvertime))
	assert.False(t, MatchesCaution(closed(9), CautionOvertime))

	// Band predicates are raw thresholds, so broader bands include narrower
	// ones: half-day hours also match the early-leave filter.
	assert.True(t, MatchesCaution(closed(4.2), CautionEarlyLeave))
	assert.True(t, MatchesCaution(closed(4.2), CautionHalfDay))
	assert.True(t, MatchesCaution(closed(8.7), CautionShortLeave))
	assert.False(t, MatchesCaution(closed(8.7), CautionHalfDay))

	// Live records never match an hours band.
	live := Record{EmployeeID: "emp-1", WorkingHours: 12}
	assert.False(t, MatchesCaution(live, CautionOvertime))
	assert.True(t, MatchesCaution(live, CautionNone))

	forgot := Record{EmployeeID: "emp-1", Status: string(StatusForgotCheckout)}
	assert.True(t, MatchesCaution(forgot, CautionForgotCheckout))
	assert.False(t, MatchesCaution(closed(3), CautionForgotCheckout))
}

func TestCautionValid(t *testing.T) {
	t.Parallel()

	assert.True(t, CautionNone.Valid())
	assert.True(t, CautionOvertime.Valid())
	assert.True(t, CautionForgotCheckout.Valid())
	assert.False(t, Caution("late").Valid())
}
