// Package calculator implements the per-scope emission calculations and the
// aggregation into a persistable footprint record. All functions are pure:
// they never touch the store and either return a complete category
// breakdown or fail the whole request.
package calculator

import (
	"carbontrack/internal/factors"
	"carbontrack/internal/models"
)

// Scope1 computes direct emissions. Stationary combustion uses the Tier 2
// carbon-content formula (activity x carbon content x 44/12) when requested
// and a positive carbon content is supplied, otherwise the Tier 1
// activity x EF product. Railways use a fixed EF and contribute only when
// fuel was reported. Legacy categories apply their embedded coefficients.
func Scope1(in models.Scope1Input) (*models.CategoryResult, error) {
	result := models.NewCategoryResult(models.Scope1Categories)

	stationary := in.StationaryFuelTJ * in.StationaryEF
	if in.UseCarbonContent && in.StationaryCarbonContent > 0 {
		stationary = in.StationaryFuelTJ * in.StationaryCarbonContent * factors.CO2PerCarbon
	}

	railways := 0.0
	if in.RailFuelTJ > 0 {
		railways = in.RailFuelTJ * factors.RailwaysEF
	}

	entries := []struct {
		key   string
		value float64
	}{
		{"stationary_combustion", stationary},
		{"road_transport", in.RoadFuelTJ * in.RoadEF},
		{"railways", railways},
		{"marine_navigation", in.MarineFuelTJ * in.MarineEF},
		{"offroad_vehicles", in.OffroadFuelTJ * in.OffroadEF},
		{"process_emissions", in.ProcessActivityTonnes * in.ProcessEF},
		{"fugitive_emissions", in.FugitiveActivity * in.FugitiveEF},
		{"custom_natural_gas", in.NaturalGasM3 * factors.NaturalGasEF},
		{"custom_fuel_oil", in.FuelOilLiters * factors.FuelOilEF},
		{"custom_company_vehicles", in.CompanyVehicleKm * factors.CompanyVehicleEF},
		{"custom_fleet_fuel", in.FleetFuelLiters * factors.FleetFuelEF},
		{"custom_process", in.ProcessActivityUnits * factors.LegacyProcessEF},
		// GWP-weighted CO2e, not direct CO2 mass; see factors.RefrigerantGWP.
		{"custom_fugitive", in.RefrigerantLeakageKg * factors.RefrigerantGWP},
	}

	for _, e := range entries {
		if err := result.Set(e.key, e.value); err != nil {
			return nil, err
		}
	}
	return result, nil
}
