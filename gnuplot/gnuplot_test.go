// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

package gnuplot

import (
	"strings"
	"testing"
)

func TestOutput_SetTerm(t *testing.T) {
	for _, tc := range []struct {
		out  Output
		want string // "" means an error is expected for non-empty paths
	}{
		{Output{}, ""},
		{Output{Path: "chart.png"}, "set term pngcairo\n"},
		{Output{Path: "chart.svg", Size: "800,600"}, "set term svg size 800,600\n"},
		{Output{Path: "chart.gif"}, "set term gif\n"},
		{Output{Path: "anim.gif", Animate: true}, "set term gif animate delay 10\n"},
		{Output{Path: "anim.gif", Animate: true, Delay: 25}, "set term gif animate delay 25\n"},
		{Output{Path: "chart.bmp"}, ""},
		{Output{Path: "anim.png", Animate: true}, ""},
	} {
		got, err := tc.out.SetTerm()
		if tc.want == "" && tc.out.Path != "" {
			if err == nil {
				t.Errorf("SetTerm() for %+v didn't fail", tc.out)
			}
			continue
		}
		if err != nil {
			t.Errorf("SetTerm() for %+v failed: %v", tc.out, err)
		} else if got != tc.want {
			t.Errorf("SetTerm() for %+v = %q; want %q", tc.out, got, tc.want)
		}
	}
}

func TestOutput_SetOutput(t *testing.T) {
	if got := (&Output{}).SetOutput(); got != "" {
		t.Errorf("SetOutput() for empty path = %q; want \"\"", got)
	}
	if got, want := (&Output{Path: "x.png"}).SetOutput(), "set output 'x.png'\n"; got != want {
		t.Errorf("SetOutput() = %q; want %q", got, want)
	}
}

func TestFooterLabel(t *testing.T) {
	if got := FooterLabel(""); got != "" {
		t.Errorf("FooterLabel(\"\") = %q; want \"\"", got)
	}
	if got := FooterLabel("https://example.org/data"); !strings.Contains(got, "https://example.org/data") {
		t.Errorf("FooterLabel() = %q; doesn't mention source", got)
	}
}
