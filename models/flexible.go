package models

import (
	"encoding/json"
	"math"
)

// FlexibleStringSlice can unmarshal from either a string or []string.
// LLM output drifts between the two, so every list section of a provider
// result uses this type.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// Mixed arrays keep their string members
	var mixed []interface{}
	if err := json.Unmarshal(data, &mixed); err == nil {
		out := make([]string, 0, len(mixed))
		for _, item := range mixed {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		*f = out
		return nil
	}

	// If everything fails, return empty slice
	*f = []string{}
	return nil
}

// OrEmpty returns a non-nil slice
func (f FlexibleStringSlice) OrEmpty() FlexibleStringSlice {
	if f == nil {
		return FlexibleStringSlice{}
	}
	return f
}

// FlexibleInt accepts numbers, numeric strings and null
type FlexibleInt int

func (n *FlexibleInt) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = flexibleFromFloat(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		var parsed float64
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			*n = flexibleFromFloat(parsed)
			return nil
		}
	}

	*n = 0
	return nil
}

// flexibleFromFloat rounds half away from zero, saturating at the int32
// range so oversized values keep their sign when clamped later
func flexibleFromFloat(f float64) FlexibleInt {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return FlexibleInt(math.Round(f))
}

// Clamp bounds the value to [lo, hi]
func (n FlexibleInt) Clamp(lo, hi int) int {
	v := int(n)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
