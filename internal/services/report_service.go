package services

import (
	"carbontrack/internal/models"
	"carbontrack/internal/repositories"
)

// ReportRow is one category line of a scope table.
type ReportRow struct {
	Category  string  `json:"category"`
	Emissions float64 `json:"emissions"`
}

// ScopeTable lists one scope's categories in the order the calculator
// produced them.
type ScopeTable struct {
	Scope string      `json:"scope"`
	Total float64     `json:"total"`
	Rows  []ReportRow `json:"rows"`
}

// Report is everything a report renderer needs for one footprint record:
// the three subtotals, the grand total in kg and tonnes, and the per-scope
// category tables.
type Report struct {
	RecordID        int64        `json:"record_id"`
	CreatedAt       float64      `json:"created_at"`
	Scope1Emissions float64      `json:"scope1_emissions"`
	Scope2Emissions float64      `json:"scope2_emissions"`
	Scope3Emissions float64      `json:"scope3_emissions"`
	TotalEmissions  float64      `json:"total_emissions"`
	TotalTonnes     float64      `json:"total_tonnes"`
	Tables          []ScopeTable `json:"tables"`
}

// ReportService assembles report data from stored records.
type ReportService struct {
	footprintRepo repositories.FootprintRepository
}

// NewReportService creates a new ReportService.
func NewReportService(footprintRepo repositories.FootprintRepository) *ReportService {
	return &ReportService{footprintRepo: footprintRepo}
}

// Generate builds the report for one of the user's records. A record owned
// by another user is reported as not found.
func (s *ReportService) Generate(userID, recordID int64) (*Report, error) {
	record, err := s.footprintRepo.GetByID(recordID)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, models.ErrNotFound
	}
	return BuildReport(record), nil
}

// BuildReport converts a record into report data. Category order follows
// the stored emission_details, which preserves calculator order.
func BuildReport(record *models.FootprintRecord) *Report {
	return &Report{
		RecordID:        record.ID,
		CreatedAt:       record.CreatedAt,
		Scope1Emissions: record.Scope1Emissions,
		Scope2Emissions: record.Scope2Emissions,
		Scope3Emissions: record.Scope3Emissions,
		TotalEmissions:  record.TotalEmissions,
		TotalTonnes:     record.TotalEmissions / 1000,
		Tables: []ScopeTable{
			scopeTable("scope1", record.Scope1Emissions, record.EmissionDetails.Scope1),
			scopeTable("scope2", record.Scope2Emissions, record.EmissionDetails.Scope2),
			scopeTable("scope3", record.Scope3Emissions, record.EmissionDetails.Scope3),
		},
	}
}

func scopeTable(scope string, total float64, details *models.CategoryResult) ScopeTable {
	table := ScopeTable{Scope: scope, Total: total}
	if details == nil {
		return table
	}
	for _, key := range details.Keys() {
		value, _ := details.Get(key)
		table.Rows = append(table.Rows, ReportRow{Category: key, Emissions: value})
	}
	return table
}
