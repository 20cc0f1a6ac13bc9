// Package random provides the single seeded source every dataset generator
// draws from. Output is reproducible for a given seed, anchor instant and
// call order.
package random

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits     = "0123456789"
)

// Source wraps a seeded gofakeit instance together with the anchor instant
// that stands in for "now" in every date primitive.
type Source struct {
	faker *gofakeit.Faker
	now   time.Time
}

// New returns a Source seeded with seed. A zero seed makes gofakeit pick a
// random seed, so callers that need reproducibility must pass a non-zero one.
func New(seed uint64, now time.Time) *Source {
	return &Source{
		faker: gofakeit.New(seed),
		now:   now.UTC(),
	}
}

// Now returns the anchor instant.
func (s *Source) Now() time.Time {
	return s.now
}

// Today returns the anchor instant truncated to its UTC calendar day.
func (s *Source) Today() time.Time {
	return time.Date(s.now.Year(), s.now.Month(), s.now.Day(), 0, 0, 0, 0, time.UTC)
}

// Int returns a uniform integer in [min, max].
func (s *Source) Int(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("random.Int: min %d > max %d", min, max))
	}
	if min == max {
		return min
	}
	return s.faker.Number(min, max)
}

// Float returns a uniform float in [min, max] rounded to the given number
// of decimal places.
func (s *Source) Float(min, max float64, places int) float64 {
	if min > max {
		panic(fmt.Sprintf("random.Float: min %v > max %v", min, max))
	}
	v := min
	if min != max {
		v = s.faker.Float64Range(min, max)
	}
	return Round(v, places)
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.faker.Float64Range(0, 1) < p
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// Pick returns one element of opts, uniformly.
func Pick[T any](s *Source, opts []T) T {
	if len(opts) == 0 {
		panic("random.Pick: empty option list")
	}
	return opts[s.Int(0, len(opts)-1)]
}

// Choice is one weighted option for Weighted.
type Choice[T any] struct {
	Value  T
	Weight int
}

// Weighted returns one of the choices with probability proportional to its
// weight. Every weight must be positive.
func Weighted[T any](s *Source, choices []Choice[T]) T {
	if len(choices) == 0 {
		panic("random.Weighted: empty choice list")
	}
	total := 0
	for _, c := range choices {
		if c.Weight <= 0 {
			panic(fmt.Sprintf("random.Weighted: non-positive weight %d", c.Weight))
		}
		total += c.Weight
	}
	n := s.Int(1, total)
	for _, c := range choices {
		n -= c.Weight
		if n <= 0 {
			return c.Value
		}
	}
	return choices[len(choices)-1].Value
}

// Maybe calls fn with probability p. The coin is always drawn; fn only
// draws when it runs.
func Maybe[T any](s *Source, p float64, fn func() T) (T, bool) {
	if !s.Bool(p) {
		var zero T
		return zero, false
	}
	return fn(), true
}

// Between returns a uniform instant in [from, to] at second resolution.
func (s *Source) Between(from, to time.Time) time.Time {
	if to.Before(from) {
		panic(fmt.Sprintf("random.Between: %s is before %s", to, from))
	}
	span := int(to.Sub(from) / time.Second)
	return from.Add(time.Duration(s.Int(0, span)) * time.Second).UTC()
}

// Past returns an instant within the last years years.
func (s *Source) Past(years int) time.Time {
	return s.Between(s.now.AddDate(-years, 0, 0), s.now)
}

// Future returns an instant within the next years years.
func (s *Source) Future(years int) time.Time {
	return s.Between(s.now, s.now.AddDate(years, 0, 0))
}

// Recent returns an instant within the last days days.
func (s *Source) Recent(days int) time.Time {
	return s.Between(s.now.AddDate(0, 0, -days), s.now)
}

// Soon returns an instant within days days after ref.
func (s *Source) Soon(days int, ref time.Time) time.Time {
	return s.Between(ref, ref.AddDate(0, 0, days))
}

// Birthdate returns a date of birth for someone aged between minAge and
// maxAge at the anchor instant.
func (s *Source) Birthdate(minAge, maxAge int) time.Time {
	if minAge > maxAge {
		panic(fmt.Sprintf("random.Birthdate: minAge %d > maxAge %d", minAge, maxAge))
	}
	from := s.now.AddDate(-maxAge-1, 0, 1)
	to := s.now.AddDate(-minAge, 0, 0)
	return s.Between(from, to)
}

// Alphanumeric returns n upper-case letters and digits.
func (s *Source) Alphanumeric(n int) string {
	return s.fromCharset(upperAlnum, n)
}

// Numeric returns n digits.
func (s *Source) Numeric(n int) string {
	return s.fromCharset(digits, n)
}

func (s *Source) fromCharset(charset string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(charset[s.Int(0, len(charset)-1)])
	}
	return b.String()
}

func (s *Source) FirstName() string { return s.faker.FirstName() }
func (s *Source) LastName() string  { return s.faker.LastName() }
func (s *Source) FullName() string  { return s.faker.Name() }
func (s *Source) Street() string    { return s.faker.Street() }
func (s *Source) Phone() string     { return s.faker.PhoneFormatted() }

// Sentence returns a lorem sentence of roughly words words.
func (s *Source) Sentence(words int) string {
	return s.faker.Sentence(words)
}

// Paragraph joins sentences lorem sentences.
func (s *Source) Paragraph(sentences int) string {
	parts := make([]string, 0, sentences)
	for i := 0; i < sentences; i++ {
		parts = append(parts, s.Sentence(s.Int(6, 12)))
	}
	return strings.Join(parts, " ")
}
