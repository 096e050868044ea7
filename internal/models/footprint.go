package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EmissionDetails nests the three per-scope category breakdowns under the
// stable keys "scope1", "scope2" and "scope3".
type EmissionDetails struct {
	Scope1 *CategoryResult `json:"scope1"`
	Scope2 *CategoryResult `json:"scope2"`
	Scope3 *CategoryResult `json:"scope3"`
}

// Value implements driver.Valuer so GORM stores the details as a JSON column.
func (d EmissionDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for reading the JSON column back.
func (d *EmissionDetails) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into EmissionDetails", src)
	}
}

// FootprintRecord is the persisted unit of a calculation. The store assigns
// ID (max existing + 1) and CreatedAt (float epoch seconds); records are
// immutable once saved. TotalEmissions always equals the sum of the three
// scope subtotals because the aggregator computes it.
type FootprintRecord struct {
	ID              int64           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	UserID          int64           `json:"user_id" gorm:"index"`
	CreatedAt       float64         `json:"created_at"`
	Scope1Emissions float64         `json:"scope1_emissions"`
	Scope2Emissions float64         `json:"scope2_emissions"`
	Scope3Emissions float64         `json:"scope3_emissions"`
	TotalEmissions  float64         `json:"total_emissions"`
	EmissionDetails EmissionDetails `json:"emission_details" gorm:"type:json"`
}

// TableName keeps the GORM table name aligned with the persisted layout.
func (FootprintRecord) TableName() string { return "carbon_footprints" }
