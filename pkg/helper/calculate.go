package helper

import "math"

func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	return (page - 1) * limit
}

func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 1
	}

	return (totalItems + limit - 1) / limit
}

// CalculateLineTotal multiplies a unit price by a quantity, treating non-positive input as zero.
// ok is false when the product does not fit in an int64.
func CalculateLineTotal(unitPrice int64, quantity int) (total int64, ok bool) {
	if unitPrice <= 0 || quantity <= 0 {
		return 0, true
	}

	if int64(quantity) > math.MaxInt64/unitPrice {
		return 0, false
	}

	return unitPrice * int64(quantity), true
}
