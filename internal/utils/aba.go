package utils

import "strconv"

// IsValidRoutingNumber checks a nine-digit ABA routing number using the
// 3-7-1 weighted checksum.
func IsValidRoutingNumber(s string) bool {
	if len(s) != 9 {
		return false
	}

	weights := [9]int{3, 7, 1, 3, 7, 1, 3, 7, 1}
	var sum int

	for i := 0; i < 9; i++ {
		num, err := strconv.Atoi(string(s[i]))
		if err != nil || num < 0 || num > 9 {
			return false
		}
		sum += num * weights[i]
	}

	return sum%10 == 0
}
