// Package breakeven computes break-even and target-profit revenue for a small
// business and checks whether the resulting order volume fits its seating and
// kitchen capacity. Every function is pure.
package breakeven

import "math"

// Diagnostic messages. Callers may match on them.
const (
	MsgRevenueGrowthCausesLoss = "revenue growth causes loss: variable costs consume the whole sale; lower cost or fee rates or raise prices"
	MsgLowMargin               = "contribution margin is very low; consider reducing cost of goods or fees"
	MsgSalesMixNot100          = "sales mix does not add up to 100%"
	MsgStoreTight              = "store seating is tight; shorten dwell time or add seats"
	MsgStoreImpossible         = "store seating cannot support the required customers; raise the delivery share or rethink the model"
	MsgDeliveryOverload        = "delivery throughput is insufficient; improve kitchen efficiency or add delivery staff"
)

const salesMixTolerance = 1e-9

// Result is the full output of Compute. Rates are fractions of revenue.
type Result struct {
	TotalFixedCosts        float64 `json:"totalFixedCosts"`
	StoreVariableRate      float64 `json:"storeVariableRate"`
	DeliveryVariableRate   float64 `json:"deliveryVariableRate"`
	BlendedVariableRate    float64 `json:"blendedVariableRate"`
	ContributionMarginRate float64 `json:"contributionMarginRate"`

	BreakEvenMonthlyRevenue    Amount  `json:"breakEvenMonthlyRevenue"`
	BreakEvenDailyRevenue      Amount  `json:"breakEvenDailyRevenue"`
	TargetProfitMonthlyRevenue *Amount `json:"targetProfitMonthlyRevenue,omitempty"`
	TargetProfitDailyRevenue   *Amount `json:"targetProfitDailyRevenue,omitempty"`

	RequiredOrders RequiredOrders    `json:"requiredOrders"`
	Capacity       *CapacityAnalysis `json:"capacityAnalysis,omitempty"`

	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
	IsValid  bool     `json:"isValid"`
}

// RequiredRevenue returns the target-profit revenue when one was computed,
// otherwise the break-even revenue.
func (r Result) RequiredRevenue() Amount {
	if r.TargetProfitMonthlyRevenue != nil {
		return *r.TargetProfitMonthlyRevenue
	}
	return r.BreakEvenMonthlyRevenue
}

// Compute runs the pipeline: rates, blending, revenue, orders, capacity.
// Infeasible economics are reported through Result.Errors and IsValid; the
// error return is reserved for inputs that break the contract and wraps
// ErrInvalidInput.
func Compute(in Input) (Result, error) {
	if in.OpenDays < 1 {
		return Result{}, invalidInput("openDays", "must be at least 1")
	}
	if in.HasTargetProfit() && (*in.TargetProfit < 0 || math.IsNaN(*in.TargetProfit)) {
		return Result{}, invalidInput("targetProfit", "must not be negative")
	}

	warnings := make([]string, 0)
	errs := make([]string, 0)

	totalFixed := TotalFixedCosts(in.FixedCosts)
	storeRate, deliveryRate := ChannelRates(in.VariableCosts)
	blended := BlendedRate(storeRate, deliveryRate, in.SalesMix)
	margin := ContributionMargin(blended)

	switch {
	case margin <= 0:
		errs = append(errs, MsgRevenueGrowthCausesLoss)
	case margin < lowMarginThreshold:
		warnings = append(warnings, MsgLowMargin)
	}

	if math.Abs(in.SalesMix.StoreShare+in.SalesMix.DeliveryShare-100) > salesMixTolerance {
		warnings = append(warnings, MsgSalesMixNot100)
	}

	revenue := SolveRevenue(totalFixed, margin, in.OpenDays, in.TargetProfit)

	orders, err := RequiredOrdersFor(revenue.Required(), in.SalesMix, in.AOV, in.OpenDays)
	if err != nil {
		return Result{}, err
	}

	var capacity *CapacityAnalysis
	if revenue.Feasible {
		capacity = AnalyzeCapacity(orders, in.Capacity)
		warnings = append(warnings, capacityWarnings(capacity)...)
	}

	return Result{
		TotalFixedCosts:            totalFixed,
		StoreVariableRate:          storeRate / 100.0,
		DeliveryVariableRate:       deliveryRate / 100.0,
		BlendedVariableRate:        blended,
		ContributionMarginRate:     margin,
		BreakEvenMonthlyRevenue:    revenue.BreakEvenMonthly,
		BreakEvenDailyRevenue:      revenue.BreakEvenDaily,
		TargetProfitMonthlyRevenue: revenue.TargetMonthly,
		TargetProfitDailyRevenue:   revenue.TargetDaily,
		RequiredOrders:             orders,
		Capacity:                   capacity,
		Warnings:                   warnings,
		Errors:                     errs,
		IsValid:                    len(errs) == 0 && revenue.Feasible,
	}, nil
}

func capacityWarnings(c *CapacityAnalysis) []string {
	if c == nil {
		return nil
	}

	var out []string
	if c.Store != nil {
		switch c.Store.Status {
		case StoreTight:
			out = append(out, MsgStoreTight)
		case StoreImpossible:
			out = append(out, MsgStoreImpossible)
		}
	}
	if c.Delivery != nil && c.Delivery.Status == DeliveryOverload {
		out = append(out, MsgDeliveryOverload)
	}
	return out
}
