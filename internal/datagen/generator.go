// Package datagen produces the random facts the fixture pipeline is built
// from: identifiers, names, dates, prices and security material.
package datagen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/lastings-labs/bankgen/internal/lookup"
)

// ErrGenerationExhausted is returned when a uniqueness retry loop exceeds the
// configured ceiling. Only reachable with pathologically small value spaces.
var ErrGenerationExhausted = errors.New("generation exhausted: retry ceiling reached")

const (
	sortCodeDigits   = 6
	referenceDigits  = 9
	referenceLetters = 3
	ibanLength       = 24

	digits       = "0123456789"
	lowercase    = "abcdefghijklmnopqrstuvwxyz"
	hexdigits    = "0123456789abcdef"
	saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#$%&'()*+,-./:;<=>?@[]^_`{|}~ "
)

// Generator owns all random sampling state for a single run: the PRNG, the
// seen-sets that enforce identifier uniqueness, and the SWIFT sequence counter.
type Generator struct {
	rand       *rand.Rand
	maxRetries int

	swiftCounter   int
	seenSortCodes  map[string]struct{}
	seenReferences map[string]struct{}
}

// New creates a Generator. A zero seed selects a time-based seed so repeated
// runs produce different datasets; any other value makes the run reproducible.
func New(seed int64, maxRetries int) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if maxRetries <= 0 {
		maxRetries = 1000
	}
	return &Generator{
		rand:           rand.New(rand.NewSource(seed)),
		maxRetries:     maxRetries,
		seenSortCodes:  make(map[string]struct{}),
		seenReferences: make(map[string]struct{}),
	}
}

// Int returns a random integer in [min, max] inclusive.
func (g *Generator) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rand.Intn(max-min+1)
}

// Bool returns a uniformly random boolean.
func (g *Generator) Bool() bool {
	return g.rand.Intn(2) == 1
}

// Price returns a random amount in [0.01, 10000.00] rounded to two decimals.
func (g *Generator) Price() float64 {
	return g.PriceBetween(0.01, 10000.00)
}

// PriceBetween returns a random amount in [min, max] rounded to two decimals.
func (g *Generator) PriceBetween(min, max float64) float64 {
	return math.Round((min+g.rand.Float64()*(max-min))*100) / 100
}

func (g *Generator) randString(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[g.rand.Intn(len(alphabet))])
	}
	return b.String()
}

// Salt returns printable random key material of the given length. The double
// quote is excluded from the alphabet because emitted SQL quotes strings with it.
func (g *Generator) Salt(length int) string {
	return g.randString(saltAlphabet, length)
}

// Hash returns a lowercase hex string of the given length.
func (g *Generator) Hash(length int) string {
	return g.randString(hexdigits, length)
}

// IP returns a dotted-quad IPv4 address.
func (g *Generator) IP() string {
	return fmt.Sprintf("%d.%d.%d.%d", g.rand.Intn(256), g.rand.Intn(256), g.rand.Intn(256), g.rand.Intn(256))
}

// PhoneNumber returns an international phone number of 9 to 11 digits.
func (g *Generator) PhoneNumber() string {
	return g.randString(digits, g.Int(9, 11))
}

// FullName samples a first and last name from the fixed pools.
func (g *Generator) FullName() string {
	first := lookup.FirstNames[g.rand.Intn(len(lookup.FirstNames))]
	last := lookup.LastNames[g.rand.Intn(len(lookup.LastNames))]
	return first + " " + last
}

// Address returns a street address like "Maple Street 482".
func (g *Generator) Address() string {
	street := lookup.StreetNames[g.rand.Intn(len(lookup.StreetNames))]
	return fmt.Sprintf("%s Street %d", street, g.Int(1, 9999))
}

// RoomString returns a secondary address line like "Room 17".
func (g *Generator) RoomString() string {
	return fmt.Sprintf("Room %d", g.Int(1, 1000))
}

// Date returns a date string "YYYY/M/D" (no zero padding) with a uniformly
// random year in [minYear, maxYear], month in 1..12 and day in 1..28.
func (g *Generator) Date(minYear, maxYear int) string {
	return fmt.Sprintf("%d/%d/%d", g.Int(minYear, maxYear), g.Int(1, 12), g.Int(1, 28))
}

// DateBetween returns a zero-padded date string "YYYY/MM/DD" uniformly chosen
// from the inclusive range [from, to].
func (g *Generator) DateBetween(from, to time.Time) string {
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	d := from.AddDate(0, 0, g.rand.Intn(days))
	return d.Format("2006/01/02")
}

// TimeOfDay returns a clock time "H:M:S" without zero padding.
func (g *Generator) TimeOfDay() string {
	return fmt.Sprintf("%d:%d:%d", g.rand.Intn(24), g.rand.Intn(60), g.rand.Intn(60))
}

// SortCode issues a 6-digit bank sort code unique within the run.
func (g *Generator) SortCode() (string, error) {
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		code := g.randString(digits, sortCodeDigits)
		if _, seen := g.seenSortCodes[code]; seen {
			continue
		}
		g.seenSortCodes[code] = struct{}{}
		return code, nil
	}
	return "", fmt.Errorf("sort code: %w", ErrGenerationExhausted)
}

// SwiftCode issues the next code of the deterministic sequence LSTNGS00,
// LSTNGS01, ... The count is zero padded only below ten.
func (g *Generator) SwiftCode() string {
	n := g.swiftCounter
	g.swiftCounter++
	if n < 10 {
		return fmt.Sprintf("LSTNGS0%d", n)
	}
	return fmt.Sprintf("LSTNGS%d", n)
}

// ReferenceNumber issues a client reference number, 9 digits followed by
// 3 lowercase letters, unique within the run.
func (g *Generator) ReferenceNumber() (string, error) {
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		ref := g.randString(digits, referenceDigits) + g.randString(lowercase, referenceLetters)
		if _, seen := g.seenReferences[ref]; seen {
			continue
		}
		g.seenReferences[ref] = struct{}{}
		return ref, nil
	}
	return "", fmt.Errorf("reference number: %w", ErrGenerationExhausted)
}

// IBAN builds the account's IBAN: GB + 02 + 28189, then the account number
// zero padded on the left so the whole string is exactly 24 characters.
func (g *Generator) IBAN(accountNumber int) string {
	const prefix = "GB" + "02" + "28189"
	num := strconv.Itoa(accountNumber)
	pad := ibanLength - len(prefix) - len(num)
	if pad < 0 {
		pad = 0
	}
	return prefix + strings.Repeat("0", pad) + num
}
