package breakeven

import (
	"bytes"
	"math"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Amount is a monetary value or an order count that may be infinite when the
// economics are infeasible. Non-finite amounts encode as JSON null.
type Amount float64

// NotComputable is the sentinel used for revenue that can never be reached.
var NotComputable = Amount(math.Inf(1))

// IsFinite reports whether a is a regular number.
func (a Amount) IsFinite() bool {
	f := float64(a)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Float returns a as a float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(a))
}

// UnmarshalJSON implements json.Unmarshaler. null decodes to NotComputable.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = NotComputable
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}
