// internal/pagination/normalize.go
package pagination

import (
	"encoding/json"
	"math"
	"math/bits"
	"regexp"
	"strconv"
)

// digitsOnly matches unsigned decimal strings: no sign, no dot, no spaces.
var digitsOnly = regexp.MustCompile(`^\d+$`)

// Params holds caller-supplied page parameters. Either field may hold any
// value (string, number, nil, a nested object...); Normalize decides what is
// usable.
type Params struct {
	Number any `json:"number,omitempty" form:"number"`
	Size   any `json:"size,omitempty" form:"size"`
}

// Normalized is a validated page number / page size pair.
type Normalized struct {
	PageNumber int
	PageSize   int
}

// LooksLikeInteger reports whether v is a native number or a string made of
// decimal digits only.
func LooksLikeInteger(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case string:
		return digitsOnly.MatchString(x)
	case json.Number:
		return digitsOnly.MatchString(string(x))
	case *string:
		return x != nil && digitsOnly.MatchString(*x)
	case *int:
		return x != nil
	default:
		return false
	}
}

// ToInteger converts v to an int, returning fallback when v is missing,
// does not look like an integer, cannot be parsed or is negative.
func ToInteger(v any, fallback int) int {
	if v == nil || !LooksLikeInteger(v) {
		return fallback
	}
	n, ok := parseInteger(v)
	if !ok || n < 0 {
		return fallback
	}
	return n
}

func parseInteger(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return 0, false
		}
		return int(x), true
	case uint:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case float32:
		return truncate(float64(x))
	case float64:
		return truncate(x)
	case string:
		return atoi(x)
	case json.Number:
		return atoi(string(x))
	case *string:
		return atoi(*x)
	case *int:
		return *x, true
	}
	return 0, false
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// truncate drops the fractional part, 2.9 -> 2 and -0.5 -> 0.
func truncate(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t >= math.MaxInt || t < math.MinInt {
		return 0, false
	}
	return int(t), true
}

// Normalize turns raw params into a page number and size. A nil p behaves
// like empty params. The number falls back to 1, the size to cfg.Size.
func Normalize(p *Params, cfg Config) Normalized {
	if p == nil {
		p = &Params{}
	}
	return Normalized{
		PageNumber: ToInteger(p.Number, 1),
		PageSize:   ToInteger(p.Size, cfg.Size),
	}
}

// Offset returns the zero-based row offset of a one-based page. Offsets
// that do not fit in an int are clamped to math.MaxInt.
func Offset(pageSize, pageNumber int) int {
	if pageNumber < 1 || pageSize < 1 {
		return 0
	}
	n, ok := mulNonNegative(pageNumber-1, pageSize)
	if !ok {
		return math.MaxInt
	}
	return n
}

// mulNonNegative multiplies two non-negative ints, reporting false when the
// product overflows.
func mulNonNegative(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}
