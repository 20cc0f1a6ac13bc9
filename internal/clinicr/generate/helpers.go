package generate

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/catalog"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

const avatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

func requirePositive(generator string, count int) {
	if count <= 0 {
		panic(fmt.Sprintf("generate.%s: count must be positive, got %d", generator, count))
	}
}

func requireNonEmpty(generator, pool string, n int) {
	if n == 0 {
		panic(fmt.Sprintf("generate.%s: %s pool is empty", generator, pool))
	}
}

func day(t time.Time) string {
	return t.UTC().Format(model.DateLayout)
}

// parseDay reads a civil date produced by day. Generators only ever feed
// it their own output, so a parse failure is a programmer error.
func parseDay(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("generate: bad civil date %q: %v", s, err))
	}
	return t
}

func avatarURL(seed string) string {
	return avatarBase + url.QueryEscape(seed)
}

func emailLocal(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}

// email builds an address from a person's names.
func email(src *random.Source, first, last string) string {
	return fmt.Sprintf("%s.%s%d@%s",
		emailLocal(first), emailLocal(last), src.Int(10, 99), random.Pick(src, catalog.EmailDomains))
}
