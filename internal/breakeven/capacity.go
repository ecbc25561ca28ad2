package breakeven

// StoreStatus classifies seat occupancy.
type StoreStatus string

const (
	StoreComfortable StoreStatus = "comfortable"
	StorePossible    StoreStatus = "possible"
	StoreTight       StoreStatus = "tight"
	StoreImpossible  StoreStatus = "impossible"
)

// DeliveryStatus classifies kitchen utilization during peak hours.
type DeliveryStatus string

const (
	DeliverySufficient DeliveryStatus = "sufficient"
	DeliveryPossible   DeliveryStatus = "possible"
	DeliveryOverload   DeliveryStatus = "overload"
)

// Band boundaries. Lower bounds are inclusive.
const (
	storePossibleFrom   = 0.40
	storeTightFrom      = 0.70
	storeImpossibleFrom = 0.90

	deliveryPossibleFrom = 0.70
	deliveryOverloadFrom = 1.0
)

// StoreVerdict is the outcome of the seating check.
type StoreVerdict struct {
	RequiredCustomersPerDay float64     `json:"requiredCustomersPerDay"`
	Occupancy               float64     `json:"requiredAvgSeatOccupancy"`
	Status                  StoreStatus `json:"status"`
	Message                 string      `json:"message"`
}

// DeliveryVerdict is the outcome of the throughput check.
type DeliveryVerdict struct {
	RequiredOrdersPerHour float64        `json:"requiredOrdersPerHour"`
	CapacityOrdersPerHour float64        `json:"capacityOrdersPerHour"`
	Utilization           float64        `json:"utilization"`
	Status                DeliveryStatus `json:"status"`
	Message               string         `json:"message"`
}

// CapacityAnalysis holds the verdicts of the checks that ran.
type CapacityAnalysis struct {
	Store    *StoreVerdict    `json:"store,omitempty"`
	Delivery *DeliveryVerdict `json:"delivery,omitempty"`
}

// ClassifyOccupancy maps a seat occupancy ratio onto its band.
func ClassifyOccupancy(occupancy float64) StoreStatus {
	switch {
	case occupancy < storePossibleFrom:
		return StoreComfortable
	case occupancy < storeTightFrom:
		return StorePossible
	case occupancy < storeImpossibleFrom:
		return StoreTight
	default:
		return StoreImpossible
	}
}

// ClassifyUtilization maps a kitchen utilization ratio onto its band.
func ClassifyUtilization(utilization float64) DeliveryStatus {
	switch {
	case utilization < deliveryPossibleFrom:
		return DeliverySufficient
	case utilization < deliveryOverloadFrom:
		return DeliveryPossible
	default:
		return DeliveryOverload
	}
}

// CheckStore compares the seat-minutes the required customers need with the
// seat-minutes available. ok is false when a capacity field is not positive.
func CheckStore(requiredCustomersPerDay float64, c StoreCapacity) (StoreVerdict, bool) {
	if c.Seats <= 0 || c.AvgDwellMinutes <= 0 || c.NetServiceHoursPerDay <= 0 {
		return StoreVerdict{}, false
	}

	availableMinutes := c.Seats * c.NetServiceHoursPerDay * 60
	requiredMinutes := requiredCustomersPerDay * c.AvgDwellMinutes
	occupancy := requiredMinutes / availableMinutes
	status := ClassifyOccupancy(occupancy)

	return StoreVerdict{
		RequiredCustomersPerDay: requiredCustomersPerDay,
		Occupancy:               occupancy,
		Status:                  status,
		Message:                 storeMessages[status],
	}, true
}

// CheckDelivery compares the orders per peak hour needed with what the
// kitchen can prepare. ok is false when peak hours are not positive or no
// capacity figure is known.
func CheckDelivery(requiredOrdersPerDay float64, c DeliveryCapacity) (DeliveryVerdict, bool) {
	if c.PeakHoursPerDay <= 0 {
		return DeliveryVerdict{}, false
	}

	var capacityPerHour float64
	switch {
	case c.CapacityOrdersPerHour > 0:
		capacityPerHour = c.CapacityOrdersPerHour
	case c.PrepMinutes > 0:
		capacityPerHour = 60 / c.PrepMinutes
	default:
		return DeliveryVerdict{}, false
	}

	requiredPerHour := requiredOrdersPerDay / c.PeakHoursPerDay
	utilization := requiredPerHour / capacityPerHour
	status := ClassifyUtilization(utilization)

	return DeliveryVerdict{
		RequiredOrdersPerHour: requiredPerHour,
		CapacityOrdersPerHour: capacityPerHour,
		Utilization:           utilization,
		Status:                status,
		Message:               deliveryMessages[status],
	}, true
}

// AnalyzeCapacity runs whichever checks the input carries. It returns nil
// when no check ran.
func AnalyzeCapacity(orders RequiredOrders, check *CapacityCheck) *CapacityAnalysis {
	if check == nil {
		return nil
	}

	analysis := &CapacityAnalysis{}
	if check.Store != nil {
		if v, ok := CheckStore(orders.Store.Daily.Float(), *check.Store); ok {
			analysis.Store = &v
		}
	}
	if check.Delivery != nil {
		if v, ok := CheckDelivery(orders.Delivery.Daily.Float(), *check.Delivery); ok {
			analysis.Delivery = &v
		}
	}

	if analysis.Store == nil && analysis.Delivery == nil {
		return nil
	}
	return analysis
}

var storeMessages = map[StoreStatus]string{
	StoreComfortable: "comfortable: seating has plenty of room",
	StorePossible:    "possible: peak-hour operation matters",
	StoreTight:       "tight: improvements needed",
	StoreImpossible:  "impossible: seating cannot realistically handle the demand",
}

var deliveryMessages = map[DeliveryStatus]string{
	DeliverySufficient: "sufficient: kitchen has spare throughput",
	DeliveryPossible:   "possible: efficiency matters during peaks",
	DeliveryOverload:   "overload: expand the kitchen or lower the delivery share",
}
