// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/derat/covidcharts/timeseries"
)

func TestSummarize(t *testing.T) {
	start, err := time.Parse("2006-01-02", "2020-03-01")
	if err != nil {
		t.Fatal("Failed parsing date: ", err)
	}

	sums := []summary{
		{timeseries.New("Italy", start, []float64{1.5, 3.25}), 120},
		{timeseries.New("Nowhere", start, nil), 0},
	}

	var b bytes.Buffer
	if err := summarize(&b, sums); err != nil {
		t.Fatal("summarize() failed: ", err)
	}

	want := `Italy
  latest:     3.25 on 2020-03-02
  peak:       3.25 on 2020-03-02
  total:       120
Nowhere: no data in range
`
	if got := b.String(); got != want {
		t.Errorf("summarize() wrote %q; want %q", got, want)
	}
}
