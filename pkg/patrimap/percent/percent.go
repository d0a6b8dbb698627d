// Package percent converts spreadsheet percentage cells to a 0–100 scale.
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Boundary selects how a numeric value equal to 1 is read.
type Boundary int

const (
	// Exclusive reads x < 1 as a fraction. Used for the ownership matrix.
	Exclusive Boundary = iota
	// Inclusive reads x <= 1 as a fraction. Used for property shares.
	Inclusive
)

func (b Boundary) String() string {
	switch b {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	}
	return "boundary(" + strconv.Itoa(int(b)) + ")"
}

var hundred = decimal.NewFromInt(100)

// Result is the outcome of Normalize.
type Result struct {
	// Value is the canonical percentage.
	Value float64
	// Defaulted is true when Value is 0 because the input was absent,
	// unparsable or of an unsupported type.
	Defaulted bool
}

func defaulted() Result { return Result{Defaulted: true} }

// Normalize converts a raw cell value to a canonical percentage.
// It never fails: anything it cannot read becomes a defaulted zero.
func Normalize(raw any, b Boundary) Result {
	switch v := raw.(type) {
	case nil:
		return defaulted()
	case string:
		return parseString(v)
	case float64:
		return scale(v, b)
	case float32:
		return scale(float64(v), b)
	case int:
		return scale(float64(v), b)
	case int8:
		return scale(float64(v), b)
	case int16:
		return scale(float64(v), b)
	case int32:
		return scale(float64(v), b)
	case int64:
		return scale(float64(v), b)
	case uint:
		return scale(float64(v), b)
	case uint8:
		return scale(float64(v), b)
	case uint16:
		return scale(float64(v), b)
	case uint32:
		return scale(float64(v), b)
	case uint64:
		return scale(float64(v), b)
	}
	return defaulted()
}

// Ownership normalizes an ownership matrix cell.
func Ownership(raw any) float64 { return Normalize(raw, Exclusive).Value }

// PropertyShare normalizes a "% PART NO IMOVEL" cell.
func PropertyShare(raw any) float64 { return Normalize(raw, Inclusive).Value }

// parseString reads text such as "45,50%" or " 12.5 ". Text is never scaled.
func parseString(s string) Result {
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return defaulted()
	}
	return Result{Value: f}
}

func scale(x float64, b Boundary) Result {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return defaulted()
	}
	fraction := x < 1
	if b == Inclusive {
		fraction = x <= 1
	}
	if !fraction {
		return Result{Value: x}
	}
	f, _ := decimal.NewFromFloat(x).Mul(hundred).Float64()
	return Result{Value: f}
}
