// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

package timeseries

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSeries_Check(t *testing.T) {
	s := New("x", date("2020-03-01"), []float64{1, 2, 3})
	if err := s.Check(); err != nil {
		t.Error("Check() on valid series failed: ", err)
	}

	s = &Series{Name: "x", Dates: s.Dates, Values: []float64{1, 2}}
	if err := s.Check(); err == nil {
		t.Error("Check() didn't report mismatched lengths")
	}

	s = &Series{
		Name:   "x",
		Dates:  []time.Time{date("2020-03-01"), date("2020-03-03")},
		Values: []float64{1, 2},
	}
	if err := s.Check(); err == nil {
		t.Error("Check() didn't report a gap in dates")
	}
}

func TestSeries_Clip(t *testing.T) {
	s := New("x", date("2020-03-01"), []float64{1, 2, 3, 4})
	got := s.Clip(date("2020-03-02"), date("2020-03-03"))
	if diff := cmp.Diff(New("x", date("2020-03-02"), []float64{2, 3}), got); diff != "" {
		t.Error("Clip() returned bad series:\n" + diff)
	}

	// Clipping to a range outside the series leaves it empty.
	if got := s.Clip(date("2020-04-01"), date("2020-04-02")); got.Len() != 0 {
		t.Errorf("Clip() outside range kept %d days", got.Len())
	}
}

func TestSeries_TrimBelow(t *testing.T) {
	s := New("x", date("2020-03-01"), []float64{10, 20, 25, 30})
	got := s.TrimBelow(25)
	if diff := cmp.Diff(New("x", date("2020-03-03"), []float64{25, 30}), got); diff != "" {
		t.Error("TrimBelow() returned bad series:\n" + diff)
	}
}

func TestSeries_Diff(t *testing.T) {
	s := New("x", date("2020-03-01"), []float64{25, 30, 28, 40})
	got := s.Diff()
	// The dip on the third day is a downward revision and clamps to 0.
	if diff := cmp.Diff(New("x", date("2020-03-02"), []float64{5, 0, 12}), got); diff != "" {
		t.Error("Diff() returned bad series:\n" + diff)
	}

	if got := New("x", date("2020-03-01"), nil).Diff(); got.Len() != 0 {
		t.Errorf("Diff() of empty series kept %d days", got.Len())
	}
}

func TestSeries_Smooth(t *testing.T) {
	s := New("x", date("2020-03-01"), []float64{2, 4, 6, 8})
	got := s.Smooth(2)
	if diff := cmp.Diff(New("x", date("2020-03-01"), []float64{2, 3, 5, 7}), got); diff != "" {
		t.Error("Smooth() returned bad series:\n" + diff)
	}

	// A one-day window is the identity.
	if diff := cmp.Diff(s, s.Smooth(1)); diff != "" {
		t.Error("Smooth(1) changed series:\n" + diff)
	}
}

func TestSeries_Scale(t *testing.T) {
	s := New("x", date("2020-03-01"), []float64{1, 2})
	got := s.Scale(10)
	if diff := cmp.Diff(New("x", date("2020-03-01"), []float64{10, 20}), got); diff != "" {
		t.Error("Scale() returned bad series:\n" + diff)
	}
}

func TestSeries_LastMax(t *testing.T) {
	s := New("x", date("2020-03-01"), []float64{1, 7, 3})
	if d, v := s.Last(); !d.Equal(date("2020-03-03")) || v != 3 {
		t.Errorf("Last() = %v, %v; want 2020-03-03, 3", d.Format("2006-01-02"), v)
	}
	if d, v := s.Max(); !d.Equal(date("2020-03-02")) || v != 7 {
		t.Errorf("Max() = %v, %v; want 2020-03-02, 7", d.Format("2006-01-02"), v)
	}
}
