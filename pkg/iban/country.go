package iban

import (
	"fmt"
	"sort"
	"strings"
)

// Country is the IBAN profile of one country: ISO 3166-1 codes, SEPA
// membership and the positional format mask.
type Country struct {
	name    string
	alpha2  string
	alpha3  string
	numeric string
	sepa    bool
	format  string
}

type countryEntry struct {
	alpha2  string
	alpha3  string
	numeric string
	name    string
	sepa    bool
	format  string
}

var countries = buildRegistry(countryTable)

func buildRegistry(table []countryEntry) map[string]Country {
	registry := make(map[string]Country, len(table))
	for _, e := range table {
		format := strings.ReplaceAll(e.format, " ", "")
		if !strings.HasPrefix(format, e.alpha2+string(RoleCheckDigits)+string(RoleCheckDigits)) {
			panic(fmt.Sprintf("iban: format for %s must start with %skk, got %q", e.alpha2, e.alpha2, e.format))
		}
		if _, dup := registry[e.alpha2]; dup {
			panic(fmt.Sprintf("iban: duplicate country %s", e.alpha2))
		}
		registry[e.alpha2] = Country{
			name:    e.name,
			alpha2:  e.alpha2,
			alpha3:  e.alpha3,
			numeric: e.numeric,
			sepa:    e.sepa,
			format:  format,
		}
	}
	return registry
}

// LookupCountry returns the profile registered for a two-letter country code.
// The code is matched exactly; callers normalize first.
func LookupCountry(code string) (Country, bool) {
	c, ok := countries[code]
	return c, ok
}

// Countries returns every registered profile ordered by alpha-2 code.
func Countries() []Country {
	out := make([]Country, 0, len(countries))
	for _, c := range countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].alpha2 < out[j].alpha2 })
	return out
}

// Name returns the English display name.
func (c Country) Name() string { return c.name }

// Alpha2 returns the ISO 3166-1 alpha-2 code, which is also the IBAN prefix.
func (c Country) Alpha2() string { return c.alpha2 }

// Alpha3 returns the ISO 3166-1 alpha-3 code.
func (c Country) Alpha3() string { return c.alpha3 }

// NumericCode returns the ISO 3166-1 numeric code. It is empty for codes
// without an assigned number (Kosovo).
func (c Country) NumericCode() string { return c.numeric }

// SEPA reports whether the country is part of the Single Euro Payments Area.
func (c Country) SEPA() bool { return c.sepa }

// Format returns the format mask without grouping spaces.
func (c Country) Format() string { return c.format }

// Length is the exact length of every valid IBAN for the country.
func (c Country) Length() int { return len(c.format) }

// IsZero reports whether c is the zero value.
func (c Country) IsZero() bool { return c.alpha2 == "" }
