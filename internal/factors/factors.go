// Package factors holds the emission-factor catalog: the default
// coefficients the calculators and UI prefill work from. Every constant
// carries a fixed unit; calculators accept caller-overridden values, so
// these are defaults, not enforced bounds. The numeric values must not
// change, for result compatibility with existing stored records.
package factors

// Molar mass ratios used when converting oxidized carbon mass.
const (
	CO2PerCarbon = 44.0 / 12.0 // kg CO2 per kg C
	CH4PerCarbon = 16.0 / 12.0 // kg CH4 per kg C
)

// Scope 1 combustion and process defaults.
const (
	DefaultStationaryEF = 56100.0 // kg CO2 per TJ
	DefaultRoadEF       = 74100.0 // kg CO2 per TJ
	RailwaysEF          = 4150.0  // kg CO2 per TJ; fixed, not caller-suppliable
	DefaultMarineEF     = 77400.0 // kg CO2 per TJ
	DefaultOffroadEF    = 74100.0 // kg CO2 per TJ
	DefaultProcessEF    = 1000.0  // kg CO2 per tonne
	DefaultFugitiveEF   = 500.0   // kg CO2 per unit handled
)

// Legacy scope 1 coefficients, fixed per category.
const (
	NaturalGasEF     = 2.1  // kg CO2 per m3
	FuelOilEF        = 2.68 // kg CO2 per liter
	CompanyVehicleEF = 0.14 // kg CO2 per km
	FleetFuelEF      = 2.31 // kg CO2 per liter
	LegacyProcessEF  = 1.0  // kg CO2 per unit

	// RefrigerantGWP is a GWP multiplier (kg CO2e per kg refrigerant), not
	// a direct CO2 mass factor like its siblings. The mismatch is inherited
	// from the legacy data and deliberately preserved.
	RefrigerantGWP = 1430.0
)

// Scope 2 defaults.
const (
	DefaultPurchasedEnergyEF = 0.233 // kg CO2e per kWh
	GridElectricityEF        = 0.233 // kg CO2 per kWh, legacy electricity
	HeatSteamEF              = 270.0 // kg CO2 per MWh
)

// Scope 3 defaults.
const (
	DefaultSpendEF         = 0.43  // kg CO2e per currency unit
	DefaultGoodsMassEF     = 2.0   // kg CO2e per kg
	DefaultCapitalEF       = 2.0   // kg CO2e per kg
	DefaultWellToTankEF    = 0.1   // kg CO2e per MJ
	DefaultTonneKmEF       = 0.1   // kg CO2e per tonne-km
	IncinerationEF         = 2.89  // kg CO2 per kg waste
	DefaultTravelEF        = 0.2   // kg CO2e per km
	DefaultCommuteEF       = 0.14  // kg CO2e per km
	DefaultProcessingEF    = 2.0   // kg CO2 per kg
	DefaultUsePhaseEF      = 0.233 // kg CO2e per kWh
	DefaultDisposalEF      = 2.0   // kg CO2 per kg
	DefaultFranchiseAreaEF = 50.0  // kg CO2e per m2
	DefaultInvestmentEF    = 0.2   // kg CO2e per currency unit

	FlightMileEF = 0.200 // kg CO2 per mile
	HotelNightEF = 31.3  // kg CO2 per night
	CommuteKmEF  = 0.14  // kg CO2 per km, legacy commuting
)

// Waste-degradation defaults for the landfill methane term.
const (
	DefaultDOC  = 0.2 // degradable organic carbon fraction
	DefaultDOCf = 0.5 // fraction of DOC dissimilated
	DefaultF    = 0.5 // fraction of CH4 in generated landfill gas
)
