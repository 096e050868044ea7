package calculator

import (
	"carbontrack/internal/factors"
	"carbontrack/internal/models"
)

// kgPerTonne converts transported mass from kilograms to tonnes before the
// tonne-km factors apply. Skipping this conversion inflates the transport
// categories by a factor of 1000.
const kgPerTonne = 1000.0

// Scope3 computes the 15 GHG-Protocol other-indirect categories plus the
// three legacy ones. Operational waste splits into a landfill methane term
// (mass x DOC x DOCf x F x 16/12, reduced by the recovered fraction) and an
// incineration term; investments split into a direct investee passthrough
// and an investment-value x EF term.
func Scope3(in models.Scope3Input) (*models.CategoryResult, error) {
	result := models.NewCategoryResult(models.Scope3Categories)

	wasteCH4 := in.WasteMassKg * in.DOC * in.DOCf * in.F * factors.CH4PerCarbon * (1 - in.RecoveryFraction)

	entries := []struct {
		key   string
		value float64
	}{
		{"purchased_goods_spend", in.SpendGoods * in.SpendEF},
		{"purchased_goods_mass", in.MassGoodsKg * in.MassGoodsEF},
		{"capital_goods", in.MassCapitalKg * in.CapitalEF},
		{"fuel_energy_related", in.FuelEnergyMJ * in.WellToTankEF},
		{"upstream_transport", in.UpstreamMassKg / kgPerTonne * in.UpstreamDistanceKm * in.UpstreamTonneKmEF},
		{"waste_ch4", wasteCH4},
		{"waste_co2_incineration", in.WasteMassKg * in.IncinerationEF},
		{"business_travel", in.TravelDistanceKm * in.TravelModeEF},
		{"employee_commuting", in.Employees * in.TripsPerYear * in.AvgCommuteKm * in.CommuteModeEF},
		{"upstream_leased_assets", in.LeasedFuelTJ * in.LeasedFuelEF},
		{"downstream_transport", in.DownstreamMassKg / kgPerTonne * in.DownstreamDistanceKm * in.DownstreamTonneKmEF},
		{"processing_sold_products", in.MassSoldProductsKg * in.ProcessingEF},
		{"use_sold_products", in.EnergyUseSoldKWh * in.EnergyUseSoldEF},
		{"end_of_life", in.WasteSoldProductsKg * in.DisposalEF},
		{"downstream_leased_assets", in.DownLeasedFuelTJ * in.DownLeasedFuelEF},
		{"franchises", in.FranchiseAreaM2 * in.FranchiseAreaEF},
		{"investee_emissions", in.InvesteeEmissions},
		{"investment_value", in.InvestmentValue * in.InvestmentEF},
		{"custom_flight_miles", in.FlightMiles * factors.FlightMileEF},
		{"custom_hotel_nights", in.HotelNights * factors.HotelNightEF},
		{"custom_employee_commuting", in.LegacyEmployees * in.AvgCommuteKmPerDay * in.WorkDaysPerYear * factors.CommuteKmEF},
	}

	for _, e := range entries {
		if err := result.Set(e.key, e.value); err != nil {
			return nil, err
		}
	}
	return result, nil
}
