// Package presets ships example business inputs per industry. The figures are
// starting points for the user to overwrite with real values.
package presets

import "github.com/breakeven-sim/simulator/internal/breakeven"

// Preset is a named example input.
type Preset struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Input       breakeven.Input `json:"input"`
}

func money(v float64) *float64 { return &v }

// All returns the presets in display order.
func All() []Preset {
	return []Preset{
		{
			Key:         "restaurant",
			Name:        "Restaurant",
			Description: "Typical full-service restaurant (replace with real values)",
			Input: breakeven.Input{
				FixedCosts: breakeven.FixedCosts{
					Rent:          3000000,
					Maintenance:   300000,
					Utilities:     500000,
					FixedLabor:    4000000,
					Subscriptions: 150000,
					Depreciation:  500000,
					Other:         300000,
				},
				VariableCosts: breakeven.VariableCosts{
					CogsRate:          35,
					PaymentFeeRate:    2.5,
					PlatformFeeRate:   12,
					PackagingRate:     3,
					WasteRate:         2,
					VariableLaborRate: 5,
				},
				SalesMix:     breakeven.SalesMix{StoreShare: 60, DeliveryShare: 40},
				AOV:          breakeven.AOV{StoreAOV: 18000, DeliveryAOV: 25000},
				OpenDays:     26,
				TargetProfit: money(3000000),
				Capacity: &breakeven.CapacityCheck{
					Store:    &breakeven.StoreCapacity{Seats: 20, AvgDwellMinutes: 60, NetServiceHoursPerDay: 10},
					Delivery: &breakeven.DeliveryCapacity{PeakHoursPerDay: 4, CapacityOrdersPerHour: 8},
				},
			},
		},
		{
			Key:         "cafe",
			Name:        "Cafe",
			Description: "Coffee shop with some delivery (replace with real values)",
			Input: breakeven.Input{
				FixedCosts: breakeven.FixedCosts{
					Rent:          2500000,
					Maintenance:   250000,
					Utilities:     400000,
					FixedLabor:    3000000,
					Subscriptions: 100000,
					Depreciation:  400000,
					Other:         200000,
				},
				VariableCosts: breakeven.VariableCosts{
					CogsRate:        30,
					PaymentFeeRate:  2.5,
					PlatformFeeRate: 10,
					PackagingRate:   4,
					WasteRate:       3,
				},
				SalesMix:     breakeven.SalesMix{StoreShare: 80, DeliveryShare: 20},
				AOV:          breakeven.AOV{StoreAOV: 8000, DeliveryAOV: 12000},
				OpenDays:     26,
				TargetProfit: money(2500000),
				Capacity: &breakeven.CapacityCheck{
					Store:    &breakeven.StoreCapacity{Seats: 25, AvgDwellMinutes: 90, NetServiceHoursPerDay: 12},
					Delivery: &breakeven.DeliveryCapacity{PeakHoursPerDay: 3, CapacityOrdersPerHour: 6},
				},
			},
		},
		{
			Key:         "retail",
			Name:        "Retail",
			Description: "Walk-in retail store (replace with real values)",
			Input: breakeven.Input{
				FixedCosts: breakeven.FixedCosts{
					Rent:          2000000,
					Maintenance:   200000,
					Utilities:     300000,
					FixedLabor:    2500000,
					Subscriptions: 100000,
					Depreciation:  300000,
					Other:         150000,
				},
				VariableCosts: breakeven.VariableCosts{
					CogsRate:       50,
					PaymentFeeRate: 2.5,
					PackagingRate:  2,
					WasteRate:      1,
				},
				SalesMix:     breakeven.SalesMix{StoreShare: 100},
				AOV:          breakeven.AOV{StoreAOV: 35000},
				OpenDays:     26,
				TargetProfit: money(2000000),
			},
		},
		{
			Key:         "service",
			Name:        "Service",
			Description: "Appointment-based service business (replace with real values)",
			Input: breakeven.Input{
				FixedCosts: breakeven.FixedCosts{
					Rent:          1500000,
					Maintenance:   150000,
					Utilities:     200000,
					FixedLabor:    3500000,
					Subscriptions: 200000,
					Depreciation:  300000,
					Other:         100000,
				},
				VariableCosts: breakeven.VariableCosts{
					CogsRate:          15,
					PaymentFeeRate:    2.5,
					PackagingRate:     1,
					VariableLaborRate: 10,
				},
				SalesMix:     breakeven.SalesMix{StoreShare: 100},
				AOV:          breakeven.AOV{StoreAOV: 80000},
				OpenDays:     22,
				TargetProfit: money(2500000),
			},
		},
	}
}

// Get returns the preset with the given key.
func Get(key string) (Preset, bool) {
	for _, p := range All() {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// Empty is the blank form: everything zero, store-only, 26 open days.
func Empty() breakeven.Input {
	return breakeven.Input{
		SalesMix: breakeven.SalesMix{StoreShare: 100},
		OpenDays: 26,
	}
}
