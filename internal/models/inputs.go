package models

// Calculation inputs. Every activity and emission-factor field is a plain
// number that defaults to zero when unsupplied; percentages are bounded to
// [0,100] and waste-degradation fractions to [0,1]. The factor catalog
// (internal/factors) supplies the defaults the UI prefills, but values
// arriving here are used verbatim.

// Scope1Input covers direct emissions: stationary and mobile combustion,
// industrial processes, fugitive releases, plus the six legacy categories
// with embedded coefficients.
type Scope1Input struct {
	StationaryFuelTJ        float64 `json:"stationary_fuel_tj" validate:"gte=0"`
	StationaryEF            float64 `json:"stationary_ef" validate:"gte=0"`
	StationaryCarbonContent float64 `json:"stationary_carbon_content" validate:"gte=0"`
	UseCarbonContent        bool    `json:"use_carbon_content"`

	RoadFuelTJ    float64 `json:"road_fuel_tj" validate:"gte=0"`
	RoadEF        float64 `json:"road_ef" validate:"gte=0"`
	RailFuelTJ    float64 `json:"rail_fuel_tj" validate:"gte=0"`
	MarineFuelTJ  float64 `json:"marine_fuel_tj" validate:"gte=0"`
	MarineEF      float64 `json:"marine_ef" validate:"gte=0"`
	OffroadFuelTJ float64 `json:"offroad_fuel_tj" validate:"gte=0"`
	OffroadEF     float64 `json:"offroad_ef" validate:"gte=0"`

	ProcessActivityTonnes float64 `json:"process_activity_tonnes" validate:"gte=0"`
	ProcessEF             float64 `json:"process_ef" validate:"gte=0"`
	FugitiveActivity      float64 `json:"fugitive_activity" validate:"gte=0"`
	FugitiveEF            float64 `json:"fugitive_ef" validate:"gte=0"`

	// Legacy categories; coefficients are fixed in the factor catalog.
	NaturalGasM3         float64 `json:"natural_gas_m3" validate:"gte=0"`
	FuelOilLiters        float64 `json:"fuel_oil_liters" validate:"gte=0"`
	CompanyVehicleKm     float64 `json:"company_vehicle_km" validate:"gte=0"`
	FleetFuelLiters      float64 `json:"fleet_fuel_liters" validate:"gte=0"`
	ProcessActivityUnits float64 `json:"process_activity_units" validate:"gte=0"`
	RefrigerantLeakageKg float64 `json:"refrigerant_leakage_kg" validate:"gte=0"`
}

// Scope2Input covers energy indirect emissions.
type Scope2Input struct {
	PurchasedEnergyKWh float64 `json:"purchased_energy_kwh" validate:"gte=0"`
	PurchasedEnergyEF  float64 `json:"purchased_energy_ef" validate:"gte=0"`

	ElectricityKWh   float64 `json:"electricity_kwh" validate:"gte=0"`
	RenewablePercent float64 `json:"renewable_percent" validate:"gte=0,lte=100"`
	HeatSteamMWh     float64 `json:"heat_steam_mwh" validate:"gte=0"`
}

// Scope3Input covers the 15 GHG-Protocol categories 3.1-3.15 plus the three
// legacy categories.
type Scope3Input struct {
	SpendGoods  float64 `json:"spend_goods" validate:"gte=0"`
	SpendEF     float64 `json:"spend_ef" validate:"gte=0"`
	MassGoodsKg float64 `json:"mass_goods_kg" validate:"gte=0"`
	MassGoodsEF float64 `json:"mass_goods_ef" validate:"gte=0"`

	MassCapitalKg float64 `json:"mass_capital_kg" validate:"gte=0"`
	CapitalEF     float64 `json:"capital_ef" validate:"gte=0"`

	FuelEnergyMJ float64 `json:"fuel_energy_mj" validate:"gte=0"`
	WellToTankEF float64 `json:"well_to_tank_ef" validate:"gte=0"`

	UpstreamMassKg     float64 `json:"upstream_mass_kg" validate:"gte=0"`
	UpstreamDistanceKm float64 `json:"upstream_distance_km" validate:"gte=0"`
	UpstreamTonneKmEF  float64 `json:"upstream_tonne_km_ef" validate:"gte=0"`

	WasteMassKg      float64 `json:"waste_mass_kg" validate:"gte=0"`
	DOC              float64 `json:"doc" validate:"gte=0,lte=1"`
	DOCf             float64 `json:"docf" validate:"gte=0,lte=1"`
	F                float64 `json:"f" validate:"gte=0,lte=1"`
	RecoveryFraction float64 `json:"recovery_fraction" validate:"gte=0,lte=1"`
	IncinerationEF   float64 `json:"incineration_ef" validate:"gte=0"`

	TravelDistanceKm float64 `json:"travel_distance_km" validate:"gte=0"`
	TravelModeEF     float64 `json:"travel_mode_ef" validate:"gte=0"`

	Employees     float64 `json:"employees" validate:"gte=0"`
	TripsPerYear  float64 `json:"trips_per_year" validate:"gte=0"`
	AvgCommuteKm  float64 `json:"avg_commute_km" validate:"gte=0"`
	CommuteModeEF float64 `json:"commute_mode_ef" validate:"gte=0"`

	LeasedFuelTJ float64 `json:"leased_fuel_tj" validate:"gte=0"`
	LeasedFuelEF float64 `json:"leased_fuel_ef" validate:"gte=0"`

	DownstreamMassKg     float64 `json:"downstream_mass_kg" validate:"gte=0"`
	DownstreamDistanceKm float64 `json:"downstream_distance_km" validate:"gte=0"`
	DownstreamTonneKmEF  float64 `json:"downstream_tonne_km_ef" validate:"gte=0"`

	MassSoldProductsKg float64 `json:"mass_sold_products_kg" validate:"gte=0"`
	ProcessingEF       float64 `json:"processing_ef" validate:"gte=0"`

	EnergyUseSoldKWh float64 `json:"energy_use_sold_kwh" validate:"gte=0"`
	EnergyUseSoldEF  float64 `json:"energy_use_sold_ef" validate:"gte=0"`

	WasteSoldProductsKg float64 `json:"waste_sold_products_kg" validate:"gte=0"`
	DisposalEF          float64 `json:"disposal_ef" validate:"gte=0"`

	DownLeasedFuelTJ float64 `json:"down_leased_fuel_tj" validate:"gte=0"`
	DownLeasedFuelEF float64 `json:"down_leased_fuel_ef" validate:"gte=0"`

	FranchiseAreaM2 float64 `json:"franchise_area_m2" validate:"gte=0"`
	FranchiseAreaEF float64 `json:"franchise_area_ef" validate:"gte=0"`

	InvesteeEmissions float64 `json:"investee_emissions" validate:"gte=0"`
	InvestmentValue   float64 `json:"investment_value" validate:"gte=0"`
	InvestmentEF      float64 `json:"investment_ef" validate:"gte=0"`

	// Legacy categories.
	FlightMiles        float64 `json:"flight_miles" validate:"gte=0"`
	HotelNights        float64 `json:"hotel_nights" validate:"gte=0"`
	LegacyEmployees    float64 `json:"legacy_employees" validate:"gte=0"`
	AvgCommuteKmPerDay float64 `json:"avg_commute_km_per_day" validate:"gte=0"`
	WorkDaysPerYear    float64 `json:"work_days_per_year" validate:"gte=0"`
}

// CalculationInput bundles the three scope inputs of one submission.
type CalculationInput struct {
	Scope1 Scope1Input `json:"scope1"`
	Scope2 Scope2Input `json:"scope2"`
	Scope3 Scope3Input `json:"scope3"`
}
