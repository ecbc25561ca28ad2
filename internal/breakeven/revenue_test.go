package breakeven

import (
	"math"
	"testing"
)

func TestSolveRevenue_BreakEven(t *testing.T) {
	rev := SolveRevenue(1000000, 0.55, 26, nil)

	if !rev.Feasible {
		t.Fatalf("expected feasible")
	}
	within(t, "monthly", rev.BreakEvenMonthly.Float(), 1818181.82, 0.01)
	within(t, "daily", rev.BreakEvenDaily.Float(), 1818181.82/26, 0.01)
	if rev.TargetMonthly != nil || rev.TargetDaily != nil {
		t.Fatalf("expected no target figures")
	}
	nearlyEqual(t, "required", rev.Required().Float(), rev.BreakEvenMonthly.Float())
}

func TestSolveRevenue_TargetAddsProfitToNumerator(t *testing.T) {
	goal := 500000.0
	rev := SolveRevenue(1000000, 0.5, 25, &goal)

	if rev.TargetMonthly == nil {
		t.Fatalf("expected target figures")
	}
	nearlyEqual(t, "breakEven", rev.BreakEvenMonthly.Float(), 2000000)
	nearlyEqual(t, "target", rev.TargetMonthly.Float(), 3000000)
	nearlyEqual(t, "targetDaily", rev.TargetDaily.Float(), 120000)
	nearlyEqual(t, "required", rev.Required().Float(), 3000000)
}

func TestSolveRevenue_ZeroTargetEqualsBreakEven(t *testing.T) {
	goal := 0.0
	rev := SolveRevenue(1000000, 0.5, 25, &goal)

	nearlyEqual(t, "target", rev.TargetMonthly.Float(), rev.BreakEvenMonthly.Float())
}

func TestSolveRevenue_NonPositiveMargin(t *testing.T) {
	goal := 1.0
	for _, margin := range []float64{0, -0.055, -1} {
		rev := SolveRevenue(1000000, margin, 26, &goal)
		if rev.Feasible {
			t.Fatalf("margin %v: expected infeasible", margin)
		}
		if !math.IsInf(rev.BreakEvenMonthly.Float(), 1) || !math.IsInf(rev.BreakEvenDaily.Float(), 1) {
			t.Fatalf("margin %v: expected +Inf, got %v", margin, rev.BreakEvenMonthly)
		}
		if rev.TargetMonthly != nil {
			t.Fatalf("margin %v: expected no target figures", margin)
		}
	}
}

func TestSolveRevenue_ZeroFixedCosts(t *testing.T) {
	rev := SolveRevenue(0, 0.4, 26, nil)

	if !rev.Feasible {
		t.Fatalf("expected feasible")
	}
	nearlyEqual(t, "monthly", rev.BreakEvenMonthly.Float(), 0)
}
