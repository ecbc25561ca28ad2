package breakeven

// lowMarginThreshold is the margin under which a positive margin is flagged.
const lowMarginThreshold = 0.10

// Revenue is the output of the revenue solver.
type Revenue struct {
	BreakEvenMonthly Amount
	BreakEvenDaily   Amount

	// Target figures are only set when a profit goal was given and the
	// margin is positive.
	TargetMonthly *Amount
	TargetDaily   *Amount

	Feasible bool
}

// SolveRevenue computes break-even and target-profit revenue. A margin at or
// below zero makes revenue unreachable: the break-even figures are set to
// NotComputable and Feasible is false. openDays must be at least 1.
func SolveRevenue(fixedCosts, margin float64, openDays int, targetProfit *float64) Revenue {
	if margin <= 0 {
		return Revenue{
			BreakEvenMonthly: NotComputable,
			BreakEvenDaily:   NotComputable,
		}
	}

	days := float64(openDays)
	monthly := fixedCosts / margin
	rev := Revenue{
		BreakEvenMonthly: Amount(monthly),
		BreakEvenDaily:   Amount(monthly / days),
		Feasible:         true,
	}

	if targetProfit != nil {
		targetMonthly := Amount((fixedCosts + *targetProfit) / margin)
		targetDaily := targetMonthly / Amount(days)
		rev.TargetMonthly = &targetMonthly
		rev.TargetDaily = &targetDaily
	}

	return rev
}

// Required returns the revenue the business has to reach: the target figure
// when present, otherwise break-even.
func (r Revenue) Required() Amount {
	if r.TargetMonthly != nil {
		return *r.TargetMonthly
	}
	return r.BreakEvenMonthly
}
