package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makeupstudio/internal/domain"
)

var testDistricts = []domain.TransportCost{
	{ID: 1, District: "Miraflores", Cost: 30, IsActive: true},
	{ID: 2, District: "San Isidro", Cost: 35, Notes: "incluye estacionamiento", IsActive: true},
	{ID: 3, District: "Callao", Cost: 50, IsActive: false},
}

func TestTransportLookup_CaseInsensitive(t *testing.T) {
	l := NewTransportLookup(testDistricts)

	lower := l.Lookup("miraflores")
	upper := l.Lookup("MIRAFLORES")
	exact := l.Lookup("Miraflores")

	assert.Equal(t, exact, lower)
	assert.Equal(t, exact, upper)
	assert.True(t, exact.Found)
	assert.Equal(t, 30.0, exact.Cost)
}

func TestTransportLookup_UnknownDistrict(t *testing.T) {
	l := NewTransportLookup(testDistricts)

	q := l.Lookup("Nonexistent District")
	assert.False(t, q.Found)
	assert.Equal(t, 0.0, q.Cost)
}

func TestTransportLookup_InactiveAndPartialMatches(t *testing.T) {
	l := NewTransportLookup(testDistricts)

	assert.False(t, l.Lookup("Callao").Found, "inactive entries must not match")
	assert.False(t, l.Lookup("Mira").Found, "no partial matching")
	assert.False(t, l.Lookup("San").Found)
}

func TestTransportLookup_Notes(t *testing.T) {
	l := NewTransportLookup(testDistricts)

	q := l.Lookup("san isidro")
	require.True(t, q.Found)
	assert.Equal(t, "incluye estacionamiento", q.Notes)
}

func TestComputeBreakdown_StudioDaytime(t *testing.T) {
	lookup := NewTransportLookup(testDistricts)
	sel := map[int64]int{1: 1} // Maquillaje Social - Estilo Natural, 200 / 90min

	b := ComputeBreakdown(DefaultConfig(), sel, testCatalog, lookup, domain.LocationStudio, "", "14:00")

	assert.Equal(t, 200.0, b.Subtotal)
	assert.Equal(t, 0.0, b.TransportCost)
	assert.Equal(t, 0.0, b.NightShiftCost)
	assert.Equal(t, 200.0, b.Total)
	assert.Equal(t, 90, b.TotalDuration)
	require.Len(t, b.Lines, 1)
	assert.Equal(t, "Maquillaje Social - Estilo Natural", b.Lines[0].ServiceName)
}

func TestComputeBreakdown_HomeVisitAtNight(t *testing.T) {
	lookup := NewTransportLookup(testDistricts)
	sel := map[int64]int{1: 1}

	b := ComputeBreakdown(DefaultConfig(), sel, testCatalog, lookup, domain.LocationHome, "Miraflores", "20:00")

	assert.Equal(t, 200.0, b.Subtotal)
	assert.Equal(t, 30.0, b.TransportCost)
	assert.Equal(t, 50.0, b.NightShiftCost)
	assert.Equal(t, 280.0, b.Total)
}

func TestComputeBreakdown_HomeVisitUnknownDistrict(t *testing.T) {
	lookup := NewTransportLookup(testDistricts)
	sel := map[int64]int{1: 1}

	b := ComputeBreakdown(DefaultConfig(), sel, testCatalog, lookup, domain.LocationHome, "Lejos", "10:00")

	assert.Equal(t, 0.0, b.TransportCost)
	assert.Equal(t, 200.0, b.Total)
}

func TestComputeBreakdown_Quantities(t *testing.T) {
	lookup := NewTransportLookup(testDistricts)
	sel := map[int64]int{1: 2, 4: 1}

	b := ComputeBreakdown(DefaultConfig(), sel, testCatalog, lookup, domain.LocationStudio, "", "11:00")

	assert.Equal(t, 520.0, b.Subtotal) // 2*200 + 120
	assert.Equal(t, 240, b.TotalDuration)
	require.Len(t, b.Lines, 2)
	assert.Equal(t, 2, b.Lines[0].Quantity)
	assert.Equal(t, 400.0, b.Lines[0].LineTotal)
}

func TestComputeBreakdown_UnknownServiceSkipped(t *testing.T) {
	lookup := NewTransportLookup(testDistricts)
	sel := map[int64]int{1: 1, 777: 3}

	b := ComputeBreakdown(DefaultConfig(), sel, testCatalog, lookup, domain.LocationStudio, "", "14:00")

	assert.Len(t, b.Lines, 1)
	assert.Equal(t, 200.0, b.Total)
}

func TestComputeBreakdown_EmptySelection(t *testing.T) {
	lookup := NewTransportLookup(testDistricts)

	b := ComputeBreakdown(DefaultConfig(), map[int64]int{}, testCatalog, lookup, domain.LocationStudio, "", "14:00")

	assert.Empty(t, b.Lines)
	assert.Equal(t, 0.0, b.Total)
	assert.Equal(t, 0, b.TotalDuration)
}

func TestComputeBreakdown_Idempotent(t *testing.T) {
	lookup := NewTransportLookup(testDistricts)
	sel := map[int64]int{1: 1, 4: 1, 3: 2}

	first := ComputeBreakdown(DefaultConfig(), sel, testCatalog, lookup, domain.LocationHome, "miraflores", "20:30")
	second := ComputeBreakdown(DefaultConfig(), sel, testCatalog, lookup, domain.LocationHome, "miraflores", "20:30")

	assert.Equal(t, first, second)
}
