package booking

import "math"

// pricingUnitHours is the rental length a product's base price covers.
const pricingUnitHours = 4.0

// Quote computes the total price for a rental: the product's base price
// scaled linearly by duration and rounded to the nearest whole euro.
// A zero base price (no product selected yet) quotes zero.
func Quote(basePrice float64, d Duration) int32 {
	if basePrice <= 0 {
		return 0
	}
	return int32(math.Round(basePrice * float64(d) / pricingUnitHours))
}
