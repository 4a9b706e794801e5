package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexInt decodes whole numbers from store documents and model output that are not
// always well typed: 7.5 rounds to 8, "15" and "15 minutes" read as 15, anything
// else reads as zero.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	*n = FlexInt(math.Round(flexNumber(data)))
	return nil
}

// FlexFloat is the fractional counterpart of FlexInt: "350 kcal" reads as 350.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(flexNumber(data))
	return nil
}

func flexNumber(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		return leadingNumber(s)
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0
	}
	return v
}

// leadingNumber parses the digits, with at most one decimal point, at the start of s.
func leadingNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end, dot := 0, false
	for end < len(s) {
		c := s[end]
		if c == '.' && !dot {
			dot = true
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}
