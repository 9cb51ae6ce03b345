package app

import (
	"strconv"

	"wander_wave/internal/domain"
)

// ParsePriceBounds turns the optional minPrice/maxPrice query parameters into
// a room filter. Compatibility rule carried over from the original API: a
// value that is absent, empty, non-numeric, or literally 0 is treated as "no
// bound". Zero doubles as the unset sentinel in RoomFilter for the same
// reason.
func ParsePriceBounds(minPrice, maxPrice string) domain.RoomFilter {
	return domain.RoomFilter{
		MinPrice: falsyAtoi(minPrice),
		MaxPrice: falsyAtoi(maxPrice),
	}
}

func falsyAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
