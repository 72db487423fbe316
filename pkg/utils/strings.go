package utils

import (
	"math"
	"strconv"
)

// ParseInt parses a string to int with a fallback default value
func ParseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}

// RoundMoney rounds half away from zero to 2 decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
