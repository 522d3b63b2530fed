package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGroupLatestPerEmployee_FirstSeenWins(t *testing.T) {
	t.Parallel()

	// Newest-first ordering is the caller's contract; first seen is kept.
	records := []Record{
		{ID: "a3", EmployeeID: "E001", Date: day(2024, 1, 3)},
		{ID: "a2", EmployeeID: "E001", Date: day(2024, 1, 2)},
		{ID: "b1", EmployeeID: "E002", Date: day(2024, 1, 3)},
		{ID: "a1", EmployeeID: "E001", Date: day(2024, 1, 1)},
	}

	grouped := GroupLatestPerEmployee(records)

	require.Len(t, grouped, 2)
	assert.Equal(t, "a3", grouped["E001"].ID)
	assert.Equal(t, "b1", grouped["E002"].ID)
}

func TestGroupLatestPerEmployee_DropsMissingEmployeeRef(t *testing.T) {
	t.Parallel()

	records := []Record{
		{ID: "a1", EmployeeID: "E001", Date: day(2024, 1, 3)},
		{ID: "x1", Date: day(2024, 1, 3)},
	}

	grouped := GroupLatestPerEmployee(records)

	require.Len(t, grouped, 1)
	_, ok := grouped["E001"]
	assert.True(t, ok)
}

func TestGroupLatestPerEmployee_Idempotent(t *testing.T) {
	t.Parallel()

	alreadyGrouped := []Record{
		{ID: "a1", EmployeeID: "E001", Date: day(2024, 1, 3)},
		{ID: "b1", EmployeeID: "E002", Date: day(2024, 1, 3)},
		{ID: "c1", EmployeeID: "E003", Date: day(2024, 1, 2)},
	}

	grouped := GroupLatestPerEmployee(alreadyGrouped)

	require.Len(t, grouped, len(alreadyGrouped))
	for _, r := range alreadyGrouped {
		assert.Equal(t, r.ID, grouped[r.EmployeeID].ID)
	}
}

func TestDirectory_PreservesEncounterOrder(t *testing.T) {
	t.Parallel()

	records := []Record{
		{ID: "b1", EmployeeID: "E002", Date: day(2024, 1, 3)},
		{ID: "a1", EmployeeID: "E001", Date: day(2024, 1, 3)},
		{ID: "b0", EmployeeID: "E002", Date: day(2024, 1, 2)},
	}

	directory := Directory(records)

	require.Len(t, directory, 2)
	assert.Equal(t, "b1", directory[0].ID)
	assert.Equal(t, "a1", directory[1].ID)
}

func TestMatchesSearch(t *testing.T) {
	t.Parallel()

	r := Record{EmployeeID: "E001", EmployeeName: "Priya Sharma", EmployeeCode: "1042-0007"}

	assert.True(t, MatchesSearch(r, ""))
	assert.True(t, MatchesSearch(r, "priya"))
	assert.True(t, MatchesSearch(r, "SHARMA"))
	assert.True(t, MatchesSearch(r, "1042"))
	assert.False(t, MatchesSearch(r, "ravi"))
}

func TestFilterDirectory_CombinesWithAnd(t *testing.T) {
	t.Parallel()

	out := time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)
	entries := []Record{
		{EmployeeID: "E001", EmployeeName: "Priya Sharma", WorkingHours: 10, CheckOut: &out},
		{EmployeeID: "E002", EmployeeName: "Priya Nair", WorkingHours: 8, CheckOut: &out},
		{EmployeeID: "E003", EmployeeName: "Ravi Kumar", WorkingHours: 10, CheckOut: &out},
	}

	matched := FilterDirectory(entries, "priya", CautionOvertime)

	require.Len(t, matched, 1)
	assert.Equal(t, "E001", matched[0].EmployeeID)
}

func TestPresentOn(t *testing.T) {
	t.Parallel()

	today := day(2024, 1, 3)
	records := []Record{
		{ID: "a", EmployeeID: "E001", Date: today},
		{ID: "b", EmployeeID: "E002", Date: day(2024, 1, 2)},
		{ID: "c", Date: today}, // no employee ref, dropped
		{ID: "d", EmployeeID: "E003", Date: today},
	}

	present := PresentOn(records, today.Add(14*time.Hour))

	require.Len(t, present, 2)
	assert.Equal(t, "a", present[0].ID)
	assert.Equal(t, "d", present[1].ID)
}
