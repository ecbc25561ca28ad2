package breakeven

// TotalFixedCosts sums the monthly fixed cost components.
func TotalFixedCosts(fc FixedCosts) float64 {
	return fc.Rent +
		fc.Maintenance +
		fc.Utilities +
		fc.FixedLabor +
		fc.Subscriptions +
		fc.Depreciation +
		fc.Other
}

// ChannelRates returns the store and delivery variable cost rates in percent.
// Delivery pays the platform fee on top of the shared base rate.
func ChannelRates(vc VariableCosts) (storeRate, deliveryRate float64) {
	base := vc.CogsRate +
		vc.PaymentFeeRate +
		vc.PackagingRate +
		vc.WasteRate +
		vc.VariableLaborRate

	return base, base + vc.PlatformFeeRate
}

// BlendedRate weights the channel rates (percent) by the sales mix and
// returns the blended variable rate as a fraction of revenue.
func BlendedRate(storeRate, deliveryRate float64, mix SalesMix) float64 {
	storeShare := mix.StoreShare / 100.0
	deliveryShare := mix.DeliveryShare / 100.0

	return (storeRate/100.0)*storeShare + (deliveryRate/100.0)*deliveryShare
}

// ContributionMargin is the fraction of each unit of revenue left to cover
// fixed costs and profit.
func ContributionMargin(blendedRate float64) float64 {
	return 1.0 - blendedRate
}
