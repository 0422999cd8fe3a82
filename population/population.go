// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

// Package population reads the JHU UID/ISO/FIPS lookup table and joins
// entity populations onto case series to compute per-capita rates.
package population

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/derat/covidcharts/timeseries"
)

// DefaultPer is the denominator used for per-capita rates.
const DefaultPer = 100000

// Lookup maps entity names (Combined_Key or Country_Region) to populations.
type Lookup map[string]int64

// Read parses a lookup-table CSV from r.
// Country-level rows (with an empty Province_State) win over earlier
// duplicate keys so that e.g. "Denmark" means the country itself rather
// than one of its territories.
func Read(r io.Reader) (Lookup, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	cols, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed reading header: %v", err)
	}
	var combinedCol, provCol, countryCol, popCol int
	for name, dst := range map[string]*int{
		"Combined_Key":   &combinedCol,
		"Province_State": &provCol,
		"Country_Region": &countryCol,
		"Population":     &popCol,
	} {
		found := false
		for i, s := range cols {
			if s == name || s == "\ufeff"+name { // Sigh.
				*dst = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	lk := make(Lookup)
	countryLevel := make(map[string]struct{}) // keys set from country-level rows
	for ln := 2; ; ln++ {
		vals, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		s := vals[popCol]
		if s == "" {
			continue
		}
		pop, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad population %q: %v", ln, s, err)
		}
		if pop <= 0 {
			// A zero population would turn per-capita rates into +Inf.
			continue
		}

		country := vals[countryCol]
		isCountry := vals[provCol] == ""

		for _, key := range []string{vals[combinedCol], country} {
			if key == "" {
				continue
			}
			if _, ok := countryLevel[key]; ok && !isCountry {
				continue
			}
			lk[key] = pop
			if isCountry {
				countryLevel[key] = struct{}{}
			}
		}
	}
	return lk, nil
}

// Get returns the population for an entity name as used by the jhu package,
// i.e. "Country/Region" or "Country/Region: Province/State".
func (lk Lookup) Get(entity string) (int64, bool) {
	if pop, ok := lk[entity]; ok {
		return pop, true
	}
	// jhu joins country and province with ": "; the lookup table's
	// Combined_Key uses "Province, Country".
	if i := strings.Index(entity, ": "); i != -1 {
		key := entity[i+2:] + ", " + entity[:i]
		if pop, ok := lk[key]; ok {
			return pop, true
		}
	}
	return 0, false
}

// PerCapita scales s to a rate per `per` residents.
func PerCapita(s *timeseries.Series, pop int64, per float64) *timeseries.Series {
	return s.Scale(per / float64(pop))
}
