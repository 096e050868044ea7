package calculator_test

import (
	"testing"

	"carbontrack/internal/calculator"
	"carbontrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope3_WasteMethaneTerm(t *testing.T) {
	result, err := calculator.Scope3(models.Scope3Input{
		WasteMassKg:      1000,
		DOC:              0.2,
		DOCf:             0.5,
		F:                0.5,
		RecoveryFraction: 0,
	})
	require.NoError(t, err)
	ch4, _ := result.Get("waste_ch4")
	// 1000 x 0.2 x 0.5 x 0.5 x 16/12 x 1 = 66.67
	assert.InDelta(t, 66.6666666667, ch4, 1e-6)

	// Full recovery zeroes the methane term.
	result, err = calculator.Scope3(models.Scope3Input{
		WasteMassKg: 1000, DOC: 0.2, DOCf: 0.5, F: 0.5, RecoveryFraction: 1,
	})
	require.NoError(t, err)
	ch4, _ = result.Get("waste_ch4")
	assert.Zero(t, ch4)
}

func TestScope3_WasteIncinerationTerm(t *testing.T) {
	result, err := calculator.Scope3(models.Scope3Input{
		WasteMassKg:    100,
		IncinerationEF: 2.89,
	})
	require.NoError(t, err)
	v, _ := result.Get("waste_co2_incineration")
	assert.InDelta(t, 289.0, v, 1e-9)
}

// 1000 kg over 100 km at 0.1 kg CO2e/tonne-km is 10 kg CO2e, not 10000:
// mass converts from kilograms to tonnes before the tonne-km factor applies.
func TestScope3_TonneKmConversion(t *testing.T) {
	result, err := calculator.Scope3(models.Scope3Input{
		UpstreamMassKg:     1000,
		UpstreamDistanceKm: 100,
		UpstreamTonneKmEF:  0.1,

		DownstreamMassKg:     500,
		DownstreamDistanceKm: 200,
		DownstreamTonneKmEF:  0.1,
	})
	require.NoError(t, err)

	up, _ := result.Get("upstream_transport")
	assert.InDelta(t, 10.0, up, 1e-9)

	down, _ := result.Get("downstream_transport")
	assert.InDelta(t, 10.0, down, 1e-9)
}

func TestScope3_EmployeeCommuting(t *testing.T) {
	result, err := calculator.Scope3(models.Scope3Input{
		Employees:     10,
		TripsPerYear:  220,
		AvgCommuteKm:  5,
		CommuteModeEF: 0.14,
	})
	require.NoError(t, err)
	v, _ := result.Get("employee_commuting")
	assert.InDelta(t, 10*220*5*0.14, v, 1e-9)
}

func TestScope3_InvestmentsSplit(t *testing.T) {
	result, err := calculator.Scope3(models.Scope3Input{
		InvesteeEmissions: 500,
		InvestmentValue:   1000,
		InvestmentEF:      0.2,
	})
	require.NoError(t, err)

	investee, _ := result.Get("investee_emissions")
	assert.InDelta(t, 500.0, investee, 1e-9) // direct passthrough

	investment, _ := result.Get("investment_value")
	assert.InDelta(t, 200.0, investment, 1e-9)
}

func TestScope3_LegacyCategories(t *testing.T) {
	result, err := calculator.Scope3(models.Scope3Input{
		FlightMiles:        1000,
		HotelNights:        10,
		LegacyEmployees:    5,
		AvgCommuteKmPerDay: 10,
		WorkDaysPerYear:    220,
	})
	require.NoError(t, err)

	flights, _ := result.Get("custom_flight_miles")
	assert.InDelta(t, 200.0, flights, 1e-9)

	hotels, _ := result.Get("custom_hotel_nights")
	assert.InDelta(t, 313.0, hotels, 1e-9)

	commuting, _ := result.Get("custom_employee_commuting")
	assert.InDelta(t, 5*10*220*0.14, commuting, 1e-9)
}

func TestScope3_CategoryOrder(t *testing.T) {
	result, err := calculator.Scope3(models.Scope3Input{})
	require.NoError(t, err)
	assert.Equal(t, models.Scope3Categories, result.Keys())
}
