package breakeven

// FixedCosts holds the monthly expenses that do not scale with sales.
type FixedCosts struct {
	Rent          float64 `json:"rent"`
	Maintenance   float64 `json:"maintenance"`
	Utilities     float64 `json:"utilities"`
	FixedLabor    float64 `json:"fixedLabor"`
	Subscriptions float64 `json:"subscriptions"`
	Depreciation  float64 `json:"depreciation"`
	Other         float64 `json:"other"`
}

// VariableCosts holds cost rates expressed as percentages of revenue (0..100).
type VariableCosts struct {
	CogsRate          float64 `json:"cogsRate"`
	PaymentFeeRate    float64 `json:"paymentFeeRate"`
	PlatformFeeRate   float64 `json:"platformFeeRate"`
	PackagingRate     float64 `json:"packagingRate"`
	WasteRate         float64 `json:"wasteRate,omitempty"`
	VariableLaborRate float64 `json:"variableLaborRate,omitempty"`
}

// SalesMix splits revenue between the store and delivery channels, in percent.
type SalesMix struct {
	StoreShare    float64 `json:"storeShare"`
	DeliveryShare float64 `json:"deliveryShare"`
}

// AOV is the average order value per channel.
type AOV struct {
	StoreAOV    float64 `json:"storeAov"`
	DeliveryAOV float64 `json:"deliveryAov,omitempty"`
}

// StoreCapacity describes in-store seating.
type StoreCapacity struct {
	Seats                 float64 `json:"seats"`
	AvgDwellMinutes       float64 `json:"avgDwellMinutes"`
	NetServiceHoursPerDay float64 `json:"netServiceHoursPerDay"`
}

// DeliveryCapacity describes kitchen throughput during peak hours. Either
// CapacityOrdersPerHour or PrepMinutes must be set for the check to run;
// CapacityOrdersPerHour wins when both are.
type DeliveryCapacity struct {
	PeakHoursPerDay       float64 `json:"peakHoursPerDay"`
	CapacityOrdersPerHour float64 `json:"capacityOrdersPerHour,omitempty"`
	PrepMinutes           float64 `json:"prepMinutes,omitempty"`
}

// CapacityCheck groups the two independently optional capacity checks.
type CapacityCheck struct {
	Store    *StoreCapacity    `json:"store,omitempty"`
	Delivery *DeliveryCapacity `json:"delivery,omitempty"`
}

// Input is the full business description fed to Compute. It is treated as an
// immutable value; Compute never modifies it.
type Input struct {
	FixedCosts    FixedCosts     `json:"fixedCosts"`
	VariableCosts VariableCosts  `json:"variableCosts"`
	SalesMix      SalesMix       `json:"salesMix"`
	AOV           AOV            `json:"aov"`
	OpenDays      int            `json:"openDays"`
	TargetProfit  *float64       `json:"targetProfit,omitempty"`
	Capacity      *CapacityCheck `json:"capacityCheck,omitempty"`
}

// HasTargetProfit reports whether a monthly profit goal was supplied.
func (in Input) HasTargetProfit() bool {
	return in.TargetProfit != nil
}
