package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

func TestPublishedRoster_TabTitle(t *testing.T) {
	published := &PublishedRoster{Week: 42, Year: 2026}
	assert.Equal(t, "42. Hafta (12.10 - 16.10.2026)", published.TabTitle())
}

func TestBuildRosterValues(t *testing.T) {
	published := &PublishedRoster{
		Week:   44,
		Year:   2026,
		Closed: map[roster.Weekday]string{roster.Thursday: "Cumhuriyet Bayramı"},
		Rows: []PublishedRosterRow{
			{
				Area:  "3. Kat",
				Floor: "3. Kat",
				Teachers: map[roster.Weekday][]string{
					roster.Monday:  {"Ahmet Kaya", "Ayşe Demir"},
					roster.Tuesday: {"Zeynep Yıldız"},
				},
			},
			{Area: "Bahçe", Floor: "Dış Alan"},
		},
	}

	values := buildRosterValues(published)
	require.Len(t, values, 5)

	assert.Equal(t, []interface{}{"44. Hafta Nöbet Çizelgesi (26.10 - 30.10.2026)"}, values[0])
	assert.Empty(t, values[1])
	assert.Equal(t, []interface{}{
		"Nöbet Yeri", "Kat",
		"Pazartesi 26.10", "Salı 27.10", "Çarşamba 28.10", "Perşembe 29.10 (Cumhuriyet Bayramı)", "Cuma 30.10",
	}, values[2])
	assert.Equal(t, []interface{}{"3. Kat", "3. Kat", "Ahmet Kaya, Ayşe Demir", "Zeynep Yıldız", "", "", ""}, values[3])
	assert.Equal(t, []interface{}{"Bahçe", "Dış Alan", "", "", "", "", ""}, values[4])
}

func TestQuoteTab(t *testing.T) {
	assert.Equal(t, "'42. Hafta (12.10 - 16.10.2026)'", quoteTab("42. Hafta (12.10 - 16.10.2026)"))
	assert.Equal(t, "'Öğretmen''in listesi'", quoteTab("Öğretmen'in listesi"))
}
