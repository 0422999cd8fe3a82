// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

package main

const casesTmpl = `
set title '{{.Title}}'

{{.SetTerm}}
{{.SetOutput}}

set xlabel 'Date'
set xdata time
set timefmt '%Y%m%d'

# Entity names in the header can contain spaces.
set datafile separator "\t"

set ylabel '{{.YLabel}}'
set yrange [0:*]
set grid xtics ytics

set key autotitle columnheader outside top right
set bmargin 5
{{.FooterLabel}}
{{.Linetypes}}

num_series = {{.NumSeries}}
plot for [i=2:num_series+1] '{{.DataPath}}' using 1:i with lines lw 2
`
