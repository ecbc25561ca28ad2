package breakeven

// OrderCount is a monthly and daily number of orders.
type OrderCount struct {
	Monthly Amount `json:"monthly"`
	Daily   Amount `json:"daily"`
}

// RequiredOrders holds the orders needed per channel to reach a revenue goal.
type RequiredOrders struct {
	Store    OrderCount `json:"store"`
	Delivery OrderCount `json:"delivery"`
	Total    OrderCount `json:"total"`
}

// RequiredOrdersFor converts monthly revenue into order counts. A channel with
// no share needs no orders; a channel with share but without a positive AOV is
// an InputError. Infinite revenue yields infinite counts for every channel
// that has share.
func RequiredOrdersFor(revenue Amount, mix SalesMix, aov AOV, openDays int) (RequiredOrders, error) {
	if openDays < 1 {
		return RequiredOrders{}, invalidInput("openDays", "must be at least 1")
	}

	storeMonthly, err := channelOrders(revenue, mix.StoreShare, aov.StoreAOV, "aov.storeAov")
	if err != nil {
		return RequiredOrders{}, err
	}
	deliveryMonthly, err := channelOrders(revenue, mix.DeliveryShare, aov.DeliveryAOV, "aov.deliveryAov")
	if err != nil {
		return RequiredOrders{}, err
	}

	days := Amount(openDays)
	total := storeMonthly + deliveryMonthly

	return RequiredOrders{
		Store:    OrderCount{Monthly: storeMonthly, Daily: storeMonthly / days},
		Delivery: OrderCount{Monthly: deliveryMonthly, Daily: deliveryMonthly / days},
		Total:    OrderCount{Monthly: total, Daily: total / days},
	}, nil
}

func channelOrders(revenue Amount, sharePercent, aov float64, field string) (Amount, error) {
	if sharePercent <= 0 {
		return 0, nil
	}
	if aov <= 0 {
		return 0, invalidInput(field, "must be greater than 0 when the channel has sales share")
	}
	return revenue * Amount(sharePercent/100.0) / Amount(aov), nil
}
