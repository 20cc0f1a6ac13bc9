package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RangeKind tags the variant held by a ReferenceRange.
type RangeKind int

const (
	RangeBounded RangeKind = iota
	RangeLessThan
	RangeGreaterThan
)

// ReferenceRange is either a closed interval or a one-sided threshold. The
// kind is fixed when the lab catalog is declared.
type ReferenceRange struct {
	Kind      RangeKind
	Low       float64
	High      float64
	Threshold float64
	// Places is the number of decimals shown for bounded ranges.
	Places int
}

func Bounded(low, high float64, places int) ReferenceRange {
	return ReferenceRange{Kind: RangeBounded, Low: low, High: high, Places: places}
}

func LessThan(threshold float64) ReferenceRange {
	return ReferenceRange{Kind: RangeLessThan, Threshold: threshold}
}

func GreaterThan(threshold float64) ReferenceRange {
	return ReferenceRange{Kind: RangeGreaterThan, Threshold: threshold}
}

// Inequality reports whether r is a one-sided threshold.
func (r ReferenceRange) Inequality() bool {
	return r.Kind == RangeLessThan || r.Kind == RangeGreaterThan
}

// Contains reports whether v lies inside the range.
func (r ReferenceRange) Contains(v float64) bool {
	switch r.Kind {
	case RangeLessThan:
		return v < r.Threshold
	case RangeGreaterThan:
		return v > r.Threshold
	default:
		return v >= r.Low && v <= r.High
	}
}

// String renders the label used on lab reports, e.g. "135 - 145" or "< 200".
func (r ReferenceRange) String() string {
	switch r.Kind {
	case RangeLessThan:
		return "< " + strconv.FormatFloat(r.Threshold, 'f', -1, 64)
	case RangeGreaterThan:
		return "> " + strconv.FormatFloat(r.Threshold, 'f', -1, 64)
	default:
		return fmt.Sprintf("%.*f - %.*f", r.Places, r.Low, r.Places, r.High)
	}
}

func (r ReferenceRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *ReferenceRange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseReferenceRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseReferenceRange reads a label produced by String.
func ParseReferenceRange(s string) (ReferenceRange, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "<"); ok {
		t, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return ReferenceRange{}, fmt.Errorf("reference range %q: %w", s, err)
		}
		return LessThan(t), nil
	}
	if rest, ok := strings.CutPrefix(s, ">"); ok {
		t, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return ReferenceRange{}, fmt.Errorf("reference range %q: %w", s, err)
		}
		return GreaterThan(t), nil
	}
	lo, hi, ok := strings.Cut(s, " - ")
	if !ok {
		return ReferenceRange{}, fmt.Errorf("reference range %q: missing separator", s)
	}
	low, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return ReferenceRange{}, fmt.Errorf("reference range %q: %w", s, err)
	}
	high, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return ReferenceRange{}, fmt.Errorf("reference range %q: %w", s, err)
	}
	places := 0
	if _, frac, found := strings.Cut(lo, "."); found {
		places = len(frac)
	}
	return Bounded(low, high, places), nil
}
