package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/attendance-insights/internal/pkg/validator"
)

func TestDirectoryFilterValidate(t *testing.T) {
	t.Parallel()

	ok := DirectoryFilter{Search: "priya", Caution: CautionOvertime}
	assert.NoError(t, ok.Validate())

	none := DirectoryFilter{}
	assert.NoError(t, none.Validate())

	bad := DirectoryFilter{Caution: Caution("late")}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "caution", errs[0].Field)
}

func TestRefreshRequestValidate(t *testing.T) {
	t.Parallel()

	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name    string
		req     RefreshRequest
		wantErr bool
	}{
		{"empty request keeps current window", RefreshRequest{}, false},
		{"valid window", RefreshRequest{Month: intPtr(11), Year: intPtr(2023)}, false},
		{"month out of range", RefreshRequest{Month: intPtr(13), Year: intPtr(2023)}, true},
		{"year out of range", RefreshRequest{Month: intPtr(1), Year: intPtr(1990)}, true},
		{"month without year", RefreshRequest{Month: intPtr(1)}, true},
		{"year without month", RefreshRequest{Year: intPtr(2023)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
