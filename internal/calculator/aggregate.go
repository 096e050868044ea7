package calculator

import (
	"fmt"

	"carbontrack/internal/models"
)

// Aggregate combines the three scope breakdowns into a footprint record for
// the given user. Subtotals are the sums of each breakdown's values and the
// total is the sum of the subtotals. Any non-finite value rejects the whole
// record before it can reach the store; ID and CreatedAt are left for the
// store to assign.
func Aggregate(userID int64, scope1, scope2, scope3 *models.CategoryResult) (*models.FootprintRecord, error) {
	for scope, r := range map[string]*models.CategoryResult{
		"scope1": scope1,
		"scope2": scope2,
		"scope3": scope3,
	} {
		if !r.Finite() {
			return nil, fmt.Errorf("%s: %w", scope, models.ErrNonFiniteResult)
		}
	}

	s1 := scope1.Sum()
	s2 := scope2.Sum()
	s3 := scope3.Sum()

	return &models.FootprintRecord{
		UserID:          userID,
		Scope1Emissions: s1,
		Scope2Emissions: s2,
		Scope3Emissions: s3,
		TotalEmissions:  s1 + s2 + s3,
		EmissionDetails: models.EmissionDetails{
			Scope1: scope1,
			Scope2: scope2,
			Scope3: scope3,
		},
	}, nil
}
