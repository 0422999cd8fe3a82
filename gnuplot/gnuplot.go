// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

// Package gnuplot makes it slightly easier to generate plots using gnuplot.
package gnuplot

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/template"
)

// ExecTemplate executes the supplied Go template and data to write a .gnuplot file,
// which it then passes to gnuplot.
func ExecTemplate(tmpl string, data interface{}) error {
	// Execute the template to write the .gnuplot file.
	gf, err := os.CreateTemp("", "gnuplot.")
	if err != nil {
		return err
	}
	defer os.Remove(gf.Name())

	terr := template.Must(template.New("").Parse(tmpl)).Execute(gf, data)
	cerr := gf.Close()
	if terr != nil {
		return terr
	}
	if cerr != nil {
		return cerr
	}

	// -p keeps interactive plot windows open after gnuplot exits;
	// it's a no-op when writing to a file.
	if err := exec.Command("gnuplot", "-p", gf.Name()).Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) != 0 {
			return fmt.Errorf("%v: %q", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return err
	}
	return nil
}

// Output describes where a plot should be rendered. The zero value keeps
// gnuplot's default interactive terminal.
type Output struct {
	Path    string // output file; extension selects the terminal
	Size    string // e.g. "1024,768"; empty for gnuplot's default
	Animate bool   // render an animated GIF (Path must end in .gif)
	Delay   int    // animation frame delay in 1/100 s; 0 means 10
}

// SetTerm returns the "set term ..." line for o, for interpolation into a
// plot template.
func (o *Output) SetTerm() (string, error) {
	var term string
	switch {
	case o.Path == "":
		return "", nil
	case o.Animate:
		if !strings.HasSuffix(o.Path, ".gif") {
			return "", fmt.Errorf("animated output %q not a .gif", o.Path)
		}
		delay := o.Delay
		if delay <= 0 {
			delay = 10
		}
		term = fmt.Sprintf("gif animate delay %d", delay)
	case strings.HasSuffix(o.Path, ".png"):
		term = "pngcairo"
	case strings.HasSuffix(o.Path, ".svg"):
		term = "svg"
	case strings.HasSuffix(o.Path, ".gif"):
		term = "gif"
	default:
		return "", fmt.Errorf("can't infer terminal for %q", o.Path)
	}
	if o.Size != "" {
		term += " size " + o.Size
	}
	return "set term " + term + "\n", nil
}

// SetOutput returns the "set output ..." line for o.
func (o *Output) SetOutput() string {
	if o.Path == "" {
		return ""
	}
	return fmt.Sprintf("set output '%s'\n", o.Path)
}

// FooterLabel returns a small label placed under the chart crediting the
// data source, or an empty string if src is empty.
func FooterLabel(src string) string {
	if src == "" {
		return ""
	}
	return fmt.Sprintf("set label \"{/*0.8 Source: %s}\" at screen 0.5,0.02 center\n", src)
}

// Linetypes is a block of colorblind-friendly linetype definitions shared by
// the plotting programs. See https://stackoverflow.com/a/57239036.
const Linetypes = `
set linetype  1 lc rgb "dark-violet" lw 1 dt 1 pt 0
set linetype  2 lc rgb "#009e73"     lw 1 dt 1 pt 7
set linetype  3 lc rgb "#56b4e9"     lw 1 dt 1 pt 6 pi -1
set linetype  4 lc rgb "#e69f00"     lw 1 dt 1 pt 5 pi -1
set linetype  5 lc rgb "#f0e442"     lw 1 dt 1 pt 8
set linetype  6 lc rgb "#0072b2"     lw 1 dt 1 pt 3
set linetype  7 lc rgb "#e51e10"     lw 1 dt 1 pt 11
set linetype  8 lc rgb "black"       lw 1 dt 1
set linetype  9 lc rgb "dark-violet" lw 1 dt 3 pt 0
set linetype 10 lc rgb "#009e73"     lw 1 dt 3 pt 7
set linetype 11 lc rgb "#56b4e9"     lw 1 dt 3 pt 6 pi -1
set linetype 12 lc rgb "#e69f00"     lw 1 dt 3 pt 5 pi -1
set linetype 13 lc rgb "#f0e442"     lw 1 dt 3 pt 8
set linetype 14 lc rgb "#0072b2"     lw 1 dt 3 pt 3
set linetype 15 lc rgb "#e51e10"     lw 1 dt 3 pt 11
set linetype 16 lc rgb "black"       lw 1 dt 3
set linetype cycle 16
`
