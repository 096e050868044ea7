package calculator

import (
	"carbontrack/internal/factors"
	"carbontrack/internal/models"
)

// Scope2 computes energy-indirect emissions. Legacy electricity discounts
// the grid factor by the renewable share of consumption.
func Scope2(in models.Scope2Input) (*models.CategoryResult, error) {
	result := models.NewCategoryResult(models.Scope2Categories)

	entries := []struct {
		key   string
		value float64
	}{
		{"purchased_energy", in.PurchasedEnergyKWh * in.PurchasedEnergyEF},
		{"custom_electricity", in.ElectricityKWh * factors.GridElectricityEF * (1 - in.RenewablePercent/100)},
		{"custom_heat", in.HeatSteamMWh * factors.HeatSteamEF},
	}

	for _, e := range entries {
		if err := result.Set(e.key, e.value); err != nil {
			return nil, err
		}
	}
	return result, nil
}
