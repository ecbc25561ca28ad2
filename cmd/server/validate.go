package main

import (
	"fmt"

	"github.com/breakeven-sim/simulator/internal/breakeven"
)

const (
	maxOpenDays     = 31
	maxHoursPerDay  = 24
	maxPercentValue = 100
)

// fieldError is a form-level range violation reported as 400.
type fieldError struct {
	Field   string
	Message string
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func checkNonNegative(value float64, field string) error {
	if value < 0 {
		return &fieldError{Field: field, Message: "must be greater than or equal to 0"}
	}
	return nil
}

func checkRange(value, max float64, field string) error {
	if err := checkNonNegative(value, field); err != nil {
		return err
	}
	if value > max {
		return &fieldError{Field: field, Message: fmt.Sprintf("must be between 0 and %g", max)}
	}
	return nil
}

func checkPercent(value float64, field string) error {
	return checkRange(value, maxPercentValue, field)
}

func validateInput(in breakeven.Input) error {
	fc := in.FixedCosts
	for _, c := range []struct {
		value float64
		field string
	}{
		{fc.Rent, "fixedCosts.rent"},
		{fc.Maintenance, "fixedCosts.maintenance"},
		{fc.Utilities, "fixedCosts.utilities"},
		{fc.FixedLabor, "fixedCosts.fixedLabor"},
		{fc.Subscriptions, "fixedCosts.subscriptions"},
		{fc.Depreciation, "fixedCosts.depreciation"},
		{fc.Other, "fixedCosts.other"},
		{in.AOV.StoreAOV, "aov.storeAov"},
		{in.AOV.DeliveryAOV, "aov.deliveryAov"},
	} {
		if err := checkNonNegative(c.value, c.field); err != nil {
			return err
		}
	}

	vc := in.VariableCosts
	for _, c := range []struct {
		value float64
		field string
	}{
		{vc.CogsRate, "variableCosts.cogsRate"},
		{vc.PaymentFeeRate, "variableCosts.paymentFeeRate"},
		{vc.PlatformFeeRate, "variableCosts.platformFeeRate"},
		{vc.PackagingRate, "variableCosts.packagingRate"},
		{vc.WasteRate, "variableCosts.wasteRate"},
		{vc.VariableLaborRate, "variableCosts.variableLaborRate"},
		{in.SalesMix.StoreShare, "salesMix.storeShare"},
		{in.SalesMix.DeliveryShare, "salesMix.deliveryShare"},
	} {
		if err := checkPercent(c.value, c.field); err != nil {
			return err
		}
	}

	if in.OpenDays < 1 || in.OpenDays > maxOpenDays {
		return &fieldError{Field: "openDays", Message: fmt.Sprintf("must be between 1 and %d", maxOpenDays)}
	}

	if in.TargetProfit != nil {
		if err := checkNonNegative(*in.TargetProfit, "targetProfit"); err != nil {
			return err
		}
	}

	return validateCapacity(in.Capacity)
}

func validateCapacity(c *breakeven.CapacityCheck) error {
	if c == nil {
		return nil
	}

	if st := c.Store; st != nil {
		if err := checkNonNegative(st.Seats, "capacityCheck.store.seats"); err != nil {
			return err
		}
		if err := checkNonNegative(st.AvgDwellMinutes, "capacityCheck.store.avgDwellMinutes"); err != nil {
			return err
		}
		if err := checkRange(st.NetServiceHoursPerDay, maxHoursPerDay, "capacityCheck.store.netServiceHoursPerDay"); err != nil {
			return err
		}
	}

	if d := c.Delivery; d != nil {
		if err := checkRange(d.PeakHoursPerDay, maxHoursPerDay, "capacityCheck.delivery.peakHoursPerDay"); err != nil {
			return err
		}
		if err := checkNonNegative(d.CapacityOrdersPerHour, "capacityCheck.delivery.capacityOrdersPerHour"); err != nil {
			return err
		}
		if err := checkNonNegative(d.PrepMinutes, "capacityCheck.delivery.prepMinutes"); err != nil {
			return err
		}
	}

	return nil
}
