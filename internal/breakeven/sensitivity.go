package breakeven

import (
	"fmt"
	"math"
)

// SensitivityRange controls how far and in which steps inputs are perturbed.
type SensitivityRange struct {
	// CogsPoints is the symmetric cost-of-goods swing in percentage points.
	CogsPoints float64 `json:"cogsRangePoints"`
	CogsStep   float64 `json:"cogsStepPoints"`
	// AOVPercent is the symmetric average-order-value swing in percent.
	AOVPercent float64 `json:"aovRangePercent"`
	AOVStep    float64 `json:"aovStepPercent"`
}

// maxSensitivitySteps caps the points per sweep.
const maxSensitivitySteps = 201

// DefaultSensitivityRange is ±5 points in 1-point steps for cost of goods and
// ±10% in 2% steps for average order value.
func DefaultSensitivityRange() SensitivityRange {
	return SensitivityRange{CogsPoints: 5, CogsStep: 1, AOVPercent: 10, AOVStep: 2}
}

// CogsPoint is the outcome of one cost-of-goods perturbation.
type CogsPoint struct {
	CogsRate               float64 `json:"cogsRate"`
	ContributionMarginRate float64 `json:"contributionMarginRate"`
	Revenue                Amount  `json:"revenue"`
	IsValid                bool    `json:"isValid"`
}

// AOVPoint is the outcome of one average-order-value perturbation.
type AOVPoint struct {
	ChangePercent      float64 `json:"changePercent"`
	StoreAOV           float64 `json:"storeAov"`
	DeliveryAOV        float64 `json:"deliveryAov,omitempty"`
	Revenue            Amount  `json:"revenue"`
	TotalOrdersMonthly Amount  `json:"totalOrdersMonthly"`
}

// Sensitivity lists the recomputed required revenue for every step.
type Sensitivity struct {
	CogsRateImpact []CogsPoint `json:"cogsRateImpact"`
	AOVImpact      []AOVPoint  `json:"aovImpact"`
}

// ComputeSensitivity re-runs Compute for every cost-of-goods and AOV step.
// The reported revenue is the target-profit revenue when a goal is set,
// otherwise break-even revenue.
func ComputeSensitivity(in Input, r SensitivityRange) (Sensitivity, error) {
	if err := r.validate(); err != nil {
		return Sensitivity{}, err
	}

	out := Sensitivity{
		CogsRateImpact: make([]CogsPoint, 0, steps(r.CogsPoints, r.CogsStep)),
		AOVImpact:      make([]AOVPoint, 0, steps(r.AOVPercent, r.AOVStep)),
	}

	for i := 0; i < steps(r.CogsPoints, r.CogsStep); i++ {
		delta := -r.CogsPoints + float64(i)*r.CogsStep
		perturbed := in
		perturbed.VariableCosts.CogsRate = clamp(in.VariableCosts.CogsRate+delta, 0, 100)

		res, err := Compute(perturbed)
		if err != nil {
			return Sensitivity{}, fmt.Errorf("cogs step %+g: %w", delta, err)
		}
		out.CogsRateImpact = append(out.CogsRateImpact, CogsPoint{
			CogsRate:               perturbed.VariableCosts.CogsRate,
			ContributionMarginRate: res.ContributionMarginRate,
			Revenue:                res.RequiredRevenue(),
			IsValid:                res.IsValid,
		})
	}

	for i := 0; i < steps(r.AOVPercent, r.AOVStep); i++ {
		change := -r.AOVPercent + float64(i)*r.AOVStep
		factor := 1 + change/100
		perturbed := in
		perturbed.AOV = AOV{
			StoreAOV:    in.AOV.StoreAOV * factor,
			DeliveryAOV: in.AOV.DeliveryAOV * factor,
		}

		res, err := Compute(perturbed)
		if err != nil {
			return Sensitivity{}, fmt.Errorf("aov step %+g%%: %w", change, err)
		}
		out.AOVImpact = append(out.AOVImpact, AOVPoint{
			ChangePercent:      change,
			StoreAOV:           perturbed.AOV.StoreAOV,
			DeliveryAOV:        perturbed.AOV.DeliveryAOV,
			Revenue:            res.RequiredRevenue(),
			TotalOrdersMonthly: res.RequiredOrders.Total.Monthly,
		})
	}

	return out, nil
}

func (r SensitivityRange) validate() error {
	for _, f := range []struct {
		value float64
		field string
	}{
		{r.CogsPoints, "cogsRangePoints"},
		{r.CogsStep, "cogsStepPoints"},
		{r.AOVPercent, "aovRangePercent"},
		{r.AOVStep, "aovStepPercent"},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalidInput(f.field, "must be a finite number")
		}
	}

	if r.CogsPoints < 0 || r.CogsPoints > 100 {
		return invalidInput("cogsRangePoints", "must be in [0, 100]")
	}
	if r.CogsStep <= 0 {
		return invalidInput("cogsStepPoints", "must be greater than 0")
	}
	if r.AOVPercent < 0 || r.AOVPercent >= 100 {
		return invalidInput("aovRangePercent", "must be in [0, 100)")
	}
	if r.AOVStep <= 0 {
		return invalidInput("aovStepPercent", "must be greater than 0")
	}
	if stepCount(r.CogsPoints, r.CogsStep) > maxSensitivitySteps {
		return invalidInput("cogsStepPoints", fmt.Sprintf("yields more than %d steps", maxSensitivitySteps))
	}
	if stepCount(r.AOVPercent, r.AOVStep) > maxSensitivitySteps {
		return invalidInput("aovStepPercent", fmt.Sprintf("yields more than %d steps", maxSensitivitySteps))
	}
	return nil
}

// stepCount is the number of points in [-span, +span] walked with the given
// step, kept in float64 so huge ratios cannot overflow.
func stepCount(span, step float64) float64 {
	const eps = 1e-9
	return math.Floor((2*span+eps)/step) + 1
}

// steps is stepCount for a range that already passed validate.
func steps(span, step float64) int {
	return int(stepCount(span, step))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
