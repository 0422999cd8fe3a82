// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

// Package jhu reads the JHU CSSE wide-format COVID-19 time series CSV files
// (one row per region, one column of cumulative counts per date) and
// reshapes them into per-entity timeseries.Series values.
package jhu

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/derat/covidcharts/timeseries"
)

// dateLayout matches the header date columns, e.g. "1/22/20".
const dateLayout = "1/2/06"

// row holds a single region's cumulative counts.
type row struct {
	province, country string
	counts            []float64
}

// Table holds a parsed wide-format file: a shared list of dates plus
// per-region cumulative counts.
type Table struct {
	dates []time.Time
	rows  []row
}

// Read parses a wide-format CSV from r.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	// Find the positions of columns that we care about.
	cols, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed reading header: %v", err)
	}
	var provCol, countryCol int
	for name, dst := range map[string]*int{
		"Province/State": &provCol,
		"Country/Region": &countryCol,
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

	// Everything parseable as a date is a count column.
	t := &Table{}
	dateCols := make([]int, 0, len(cols))
	for i, s := range cols {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			continue
		}
		if n := len(t.dates); n > 0 && d.Sub(t.dates[n-1]) != 24*time.Hour {
			return nil, fmt.Errorf("date column %q doesn't follow %q",
				s, t.dates[n-1].Format(dateLayout))
		}
		t.dates = append(t.dates, d)
		dateCols = append(dateCols, i)
	}
	if len(t.dates) == 0 {
		return nil, fmt.Errorf("no date columns in header")
	}

	for ln := 2; ; ln++ {
		vals, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		rw := row{
			province: vals[provCol],
			country:  vals[countryCol],
			counts:   make([]float64, len(dateCols)),
		}
		for i, c := range dateCols {
			s := vals[c]
			if s == "" {
				continue // missing counts are treated as 0
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad count %q in column %q: %v",
					ln, s, cols[c], err)
			}
			rw.counts[i] = v
		}
		t.rows = append(t.rows, rw)
	}

	return t, nil
}

// Entities returns the sorted distinct entity names present in t:
// every Country/Region, plus "Country/Region: Province/State" for rows
// that carry a province.
func (t *Table) Entities() []string {
	seen := make(map[string]struct{})
	for _, rw := range t.rows {
		seen[rw.country] = struct{}{}
		if rw.province != "" {
			seen[rw.country+": "+rw.province] = struct{}{}
		}
	}
	ents := make([]string, 0, len(seen))
	for e := range seen {
		ents = append(ents, e)
	}
	sort.Strings(ents)
	return ents
}

// Series returns cumulative counts for the supplied entity, either a
// Country/Region name (summing all of its provinces) or a
// "Country/Region: Province/State" combined key.
func (t *Table) Series(entity string) (*timeseries.Series, error) {
	country, province := entity, ""
	if i := strings.Index(entity, ": "); i != -1 {
		country, province = entity[:i], entity[i+2:]
	}

	vals := make([]float64, len(t.dates))
	found := false
	for _, rw := range t.rows {
		if rw.country != country || (province != "" && rw.province != province) {
			continue
		}
		found = true
		for i, c := range rw.counts {
			vals[i] += c
		}
	}
	if !found {
		return nil, fmt.Errorf("no rows for entity %q", entity)
	}

	s := &timeseries.Series{Name: entity, Dates: t.dates, Values: vals}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}
