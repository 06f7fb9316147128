package rgs

import "math"

// Fixed-point scale constants. These literal values are part of the wire
// contract and must not change.
const (
	// WireScale is the multiplier applied to decimal currency values in
	// request and response payloads: 1.00 on the wire is 1000000.
	WireScale = 1_000_000

	// BookScale is the multiplier used by the downstream book format
	// consumed by reporting tools. It is never valid in wire payloads.
	BookScale = 100
)

// ToWireAmount converts a decimal currency value to the service's fixed-point
// wire representation. Ties round away from zero. Negative and non-finite
// values are rejected with *InvalidAmountError.
func ToWireAmount(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, &InvalidAmountError{Value: amount}
	}
	return int64(math.Round(amount * WireScale)), nil
}

// FromWireAmount converts a fixed-point wire amount back to its decimal
// value. Division by WireScale is exact for amounts with two fractional
// digits of currency.
func FromWireAmount(amount int64) float64 {
	return float64(amount) / WireScale
}
