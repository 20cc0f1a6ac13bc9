package random

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func draw(s *Source) []any {
	return []any{
		s.Int(1, 1000),
		s.Float(0, 10, 2),
		s.Bool(0.5),
		Pick(s, []string{"a", "b", "c"}),
		s.Alphanumeric(10),
		s.FirstName(),
		s.Recent(30),
		s.Sentence(5),
	}
}

func TestSource_Reproducible(t *testing.T) {
	a := New(42, anchor)
	b := New(42, anchor)
	for i := 0; i < 20; i++ {
		assert.Equal(t, draw(a), draw(b), "draw %d", i)
	}
}

func TestSource_SeedsDiffer(t *testing.T) {
	a := New(1, anchor)
	b := New(2, anchor)
	var sa, sb []int
	for i := 0; i < 20; i++ {
		sa = append(sa, a.Int(0, 1_000_000))
		sb = append(sb, b.Int(0, 1_000_000))
	}
	assert.NotEqual(t, sa, sb)
}

func TestSource_Today(t *testing.T) {
	s := New(1, anchor)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), s.Today())
	assert.Equal(t, anchor, s.Now())
}

func TestInt_Bounds(t *testing.T) {
	s := New(7, anchor)
	for i := 0; i < 500; i++ {
		v := s.Int(3, 9)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 9)
	}
	assert.Equal(t, 5, s.Int(5, 5))
}

func TestFloat_RoundsToPlaces(t *testing.T) {
	s := New(7, anchor)
	for i := 0; i < 200; i++ {
		v := s.Float(36, 38.5, 1)
		require.GreaterOrEqual(t, v, 36.0)
		require.LessOrEqual(t, v, 38.5)
		assert.InDelta(t, v, Round(v, 1), 1e-9)
	}
}

func TestPreconditionsPanic(t *testing.T) {
	s := New(7, anchor)
	tests := []struct {
		name string
		fn   func()
	}{
		{"int_min_gt_max", func() { s.Int(2, 1) }},
		{"float_min_gt_max", func() { s.Float(2, 1, 0) }},
		{"pick_empty", func() { Pick(s, []string{}) }},
		{"weighted_empty", func() { Weighted(s, []Choice[string]{}) }},
		{"weighted_zero", func() { Weighted(s, []Choice[string]{{"a", 0}}) }},
		{"between_reversed", func() { s.Between(anchor, anchor.Add(-time.Hour)) }},
		{"birthdate_reversed", func() { s.Birthdate(10, 5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

func TestBool_Extremes(t *testing.T) {
	s := New(9, anchor)
	for i := 0; i < 100; i++ {
		assert.False(t, s.Bool(0))
		assert.True(t, s.Bool(1))
	}
}

func TestWeighted_Distribution(t *testing.T) {
	s := New(11, anchor)
	choices := []Choice[string]{{"Active", 9}, {"Inactive", 1}}
	counts := map[string]int{}
	for i := 0; i < 5000; i++ {
		counts[Weighted(s, choices)]++
	}
	assert.Greater(t, counts["Active"], counts["Inactive"]*4)
	assert.Greater(t, counts["Inactive"], 0)
}

func TestMaybe(t *testing.T) {
	s := New(3, anchor)
	called := 0
	_, ok := Maybe(s, 0, func() int { called++; return 1 })
	assert.False(t, ok)
	assert.Equal(t, 0, called)

	v, ok := Maybe(s, 1, func() int { called++; return 7 })
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, called)
}

func TestDates_WithinWindows(t *testing.T) {
	s := New(5, anchor)
	for i := 0; i < 200; i++ {
		p := s.Past(2)
		require.False(t, p.After(anchor))
		require.False(t, p.Before(anchor.AddDate(-2, 0, 0)))

		f := s.Future(1)
		require.False(t, f.Before(anchor))
		require.False(t, f.After(anchor.AddDate(1, 0, 0)))

		r := s.Recent(30)
		require.False(t, r.Before(anchor.AddDate(0, 0, -30)))

		ref := anchor.AddDate(0, 0, -3)
		so := s.Soon(5, ref)
		require.False(t, so.Before(ref))
		require.False(t, so.After(ref.AddDate(0, 0, 5)))
	}
}

func TestBirthdate_Age(t *testing.T) {
	s := New(5, anchor)
	for i := 0; i < 300; i++ {
		dob := s.Birthdate(1, 90)
		age := anchor.Year() - dob.Year()
		if anchor.Month() < dob.Month() || (anchor.Month() == dob.Month() && anchor.Day() < dob.Day()) {
			age--
		}
		require.GreaterOrEqual(t, age, 1, "dob %s", dob)
		require.LessOrEqual(t, age, 90, "dob %s", dob)
	}
}

func TestCharsets(t *testing.T) {
	s := New(5, anchor)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{10}$`), s.Alphanumeric(10))
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{7}$`), s.Numeric(7))
	assert.Equal(t, "", s.Numeric(0))
}

func TestParagraph(t *testing.T) {
	s := New(5, anchor)
	assert.NotEmpty(t, s.Paragraph(3))
	assert.NotEmpty(t, s.FullName())
	assert.NotEmpty(t, s.Street())
	assert.NotEmpty(t, s.Phone())
}
