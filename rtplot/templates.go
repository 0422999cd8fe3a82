// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

package main

// rtTmplData is interpolated into rtTmpl and rtAnimTmpl.
type rtTmplData struct {
	Title       string
	BandTitle   string
	DataPath    string
	NumDays     int // animation only
	SetTerm     string
	SetOutput   string
	FooterLabel string
}

const rtSetup = `
set xlabel 'Date'
set xdata time
set timefmt '%Y%m%d'

set ylabel 'R_t'
set yrange [0:4]
set grid xtics ytics

set key top right
set bmargin 5
`

const rtTmpl = `
set title '{{.Title}}'

{{.SetTerm}}
{{.SetOutput}}
` + rtSetup + `
{{.FooterLabel}}

plot '{{.DataPath}}' using 1:2:3 with filledcurves lc 'skyblue' fs transparent solid 0.25 title '{{.BandTitle}}', \
     '{{.DataPath}}' using 1:4 with lines lc 'blue' lw 3 title 'Most likely', \
     1 with lines lc 'red' dt 2 notitle
`

// rtAnimTmpl draws one frame per day, plotting rows 0..n so the estimate
// grows across the animation.
const rtAnimTmpl = `
set title '{{.Title}}'

{{.SetTerm}}
{{.SetOutput}}
` + rtSetup + `
{{.FooterLabel}}

num_days = {{.NumDays}}
do for [n=1:num_days] {
    plot '{{.DataPath}}' every ::0::n using 1:2:3 with filledcurves lc 'skyblue' fs transparent solid 0.25 title '{{.BandTitle}}', \
         '{{.DataPath}}' every ::0::n using 1:4 with lines lc 'blue' lw 3 title 'Most likely', \
         1 with lines lc 'red' dt 2 notitle
}
`
