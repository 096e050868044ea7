package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Category vocabularies, one per scope, in calculation order. Adding or
// renaming a category is a schema change: update the vocabulary here and
// the calculator that fills it.
var (
	Scope1Categories = []string{
		"stationary_combustion",
		"road_transport",
		"railways",
		"marine_navigation",
		"offroad_vehicles",
		"process_emissions",
		"fugitive_emissions",
		"custom_natural_gas",
		"custom_fuel_oil",
		"custom_company_vehicles",
		"custom_fleet_fuel",
		"custom_process",
		"custom_fugitive",
	}

	Scope2Categories = []string{
		"purchased_energy",
		"custom_electricity",
		"custom_heat",
	}

	Scope3Categories = []string{
		"purchased_goods_spend",
		"purchased_goods_mass",
		"capital_goods",
		"fuel_energy_related",
		"upstream_transport",
		"waste_ch4",
		"waste_co2_incineration",
		"business_travel",
		"employee_commuting",
		"upstream_leased_assets",
		"downstream_transport",
		"processing_sold_products",
		"use_sold_products",
		"end_of_life",
		"downstream_leased_assets",
		"franchises",
		"investee_emissions",
		"investment_value",
		"custom_flight_miles",
		"custom_hotel_nights",
		"custom_employee_commuting",
	}
)

// CategoryResult is an insertion-ordered mapping of emission category to a
// quantity in kg CO2e. When built with a vocabulary, Set rejects keys
// outside it, so a typo'd category name fails loudly instead of silently
// adding a new key.
type CategoryResult struct {
	keys   []string
	values map[string]float64
	vocab  map[string]bool
}

// NewCategoryResult creates an empty result restricted to the given
// vocabulary. A nil vocabulary accepts any key (used when decoding
// previously stored records).
func NewCategoryResult(vocabulary []string) *CategoryResult {
	r := &CategoryResult{values: make(map[string]float64)}
	if vocabulary != nil {
		r.vocab = make(map[string]bool, len(vocabulary))
		for _, k := range vocabulary {
			r.vocab[k] = true
		}
	}
	return r
}

// Set appends a category value. Keys must be unique and, when a vocabulary
// is set, members of it.
func (r *CategoryResult) Set(key string, value float64) error {
	if r.vocab != nil && !r.vocab[key] {
		return fmt.Errorf("category %q is not in the scope vocabulary", key)
	}
	if _, exists := r.values[key]; exists {
		return fmt.Errorf("category %q already set", key)
	}
	r.keys = append(r.keys, key)
	r.values[key] = value
	return nil
}

// Get returns the value for a category and whether it is present.
func (r *CategoryResult) Get(key string) (float64, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the categories in insertion order.
func (r *CategoryResult) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of categories.
func (r *CategoryResult) Len() int { return len(r.keys) }

// Sum returns the scope subtotal: the sum of all category values.
func (r *CategoryResult) Sum() float64 {
	var total float64
	for _, k := range r.keys {
		total += r.values[k]
	}
	return total
}

// Finite reports whether every value is a finite number.
func (r *CategoryResult) Finite() bool {
	for _, v := range r.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the result as a JSON object with keys in insertion
// order, matching the stored emission_details layout.
func (r *CategoryResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving its key order. No
// vocabulary check is applied so records written under an older vocabulary
// still load.
func (r *CategoryResult) UnmarshalJSON(data []byte) error {
	r.keys = nil
	r.values = make(map[string]float64)
	r.vocab = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category result must be a JSON object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("category result key must be a string")
		}
		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("category %q: %w", key, err)
		}
		if _, exists := r.values[key]; exists {
			return fmt.Errorf("category %q duplicated", key)
		}
		r.keys = append(r.keys, key)
		r.values[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
