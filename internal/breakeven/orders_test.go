package breakeven

import (
	"errors"
	"math"
	"testing"
)

func TestRequiredOrdersFor_SplitsByShare(t *testing.T) {
	orders, err := RequiredOrdersFor(12000000, SalesMix{StoreShare: 60, DeliveryShare: 40}, AOV{StoreAOV: 18000, DeliveryAOV: 25000}, 24)
	if err != nil {
		t.Fatalf("RequiredOrdersFor: %v", err)
	}

	nearlyEqual(t, "storeMonthly", orders.Store.Monthly.Float(), 400)
	nearlyEqual(t, "storeDaily", orders.Store.Daily.Float(), 400.0/24)
	nearlyEqual(t, "deliveryMonthly", orders.Delivery.Monthly.Float(), 192)
	nearlyEqual(t, "deliveryDaily", orders.Delivery.Daily.Float(), 8)
	nearlyEqual(t, "totalMonthly", orders.Total.Monthly.Float(), 592)
	nearlyEqual(t, "totalDaily", orders.Total.Daily.Float(), 592.0/24)
}

func TestRequiredOrdersFor_ZeroAOVWithShareIsInvalid(t *testing.T) {
	_, err := RequiredOrdersFor(10000000, SalesMix{StoreShare: 100}, AOV{StoreAOV: 0}, 26)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRequiredOrdersFor_NegativeAOVIsInvalid(t *testing.T) {
	_, err := RequiredOrdersFor(10000000, SalesMix{DeliveryShare: 100}, AOV{DeliveryAOV: -5}, 26)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRequiredOrdersFor_ZeroOpenDaysIsInvalid(t *testing.T) {
	_, err := RequiredOrdersFor(10000000, SalesMix{StoreShare: 100}, AOV{StoreAOV: 10000}, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRequiredOrdersFor_InfiniteRevenueNeverProducesNaN(t *testing.T) {
	orders, err := RequiredOrdersFor(NotComputable, SalesMix{DeliveryShare: 100}, AOV{DeliveryAOV: 20000}, 26)
	if err != nil {
		t.Fatalf("RequiredOrdersFor: %v", err)
	}

	for name, v := range map[string]Amount{
		"storeMonthly":    orders.Store.Monthly,
		"storeDaily":      orders.Store.Daily,
		"deliveryMonthly": orders.Delivery.Monthly,
		"totalDaily":      orders.Total.Daily,
	} {
		if math.IsNaN(v.Float()) {
			t.Fatalf("%s is NaN", name)
		}
	}
	if orders.Store.Monthly != 0 {
		t.Fatalf("expected zero store orders, got %v", orders.Store.Monthly)
	}
	if !math.IsInf(orders.Delivery.Monthly.Float(), 1) {
		t.Fatalf("expected infinite delivery orders, got %v", orders.Delivery.Monthly)
	}
}
