package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClosures_NoRules(t *testing.T) {
	closed, err := ResolveClosures(44, 2026, nil)
	require.NoError(t, err)
	assert.Empty(t, closed)
}

func TestResolveClosures_YearlyHoliday(t *testing.T) {
	rules := []ClosureRule{
		{RRule: "FREQ=YEARLY;BYMONTH=10;BYMONTHDAY=29", Reason: "Cumhuriyet Bayramı"},
	}

	// 29 October 2026 is the Thursday of week 44
	closed, err := ResolveClosures(44, 2026, rules)
	require.NoError(t, err)
	assert.Equal(t, ClosedDays{Thursday: "Cumhuriyet Bayramı"}, closed)

	closed, err = ResolveClosures(43, 2026, rules)
	require.NoError(t, err)
	assert.Empty(t, closed)
}

func TestResolveClosures_WeeklyRule(t *testing.T) {
	rules := []ClosureRule{
		{RRule: "FREQ=WEEKLY;BYDAY=WE", Reason: "Seminer"},
	}

	closed, err := ResolveClosures(42, 2026, rules)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed(Wednesday))
	assert.False(t, closed.IsClosed(Monday))
	assert.Len(t, closed, 1)
}

func TestResolveClosures_FirstReasonWins(t *testing.T) {
	rules := []ClosureRule{
		{RRule: "FREQ=YEARLY;BYMONTH=10;BYMONTHDAY=29", Reason: "Cumhuriyet Bayramı"},
		{RRule: "FREQ=WEEKLY;BYDAY=TH", Reason: "Zümre toplantısı"},
	}

	closed, err := ResolveClosures(44, 2026, rules)
	require.NoError(t, err)
	assert.Equal(t, "Cumhuriyet Bayramı", closed[Thursday])
}

func TestResolveClosures_InvalidRule(t *testing.T) {
	_, err := ResolveClosures(44, 2026, []ClosureRule{{RRule: "FREQ=SOMETIMES", Reason: "?"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid closure rule 0")
}

func TestClosedDays_NilIsOpen(t *testing.T) {
	var closed ClosedDays
	assert.False(t, closed.IsClosed(Monday))
}
