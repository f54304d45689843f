package utils

import "fmt"

// FormatUSD renders an amount in minor units as a dollar string,
// e.g. 6500 -> "$65.00".
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
