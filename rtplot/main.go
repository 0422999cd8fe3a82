// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

// The rtplot program estimates the effective reproduction number R_t for a
// single country or province from the JHU CSSE wide-format case time series
// and renders it as a chart with a credible-interval band, optionally as an
// animated GIF showing the estimate evolving over time.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/derat/covidcharts/filewriter"
	"github.com/derat/covidcharts/gnuplot"
	"github.com/derat/covidcharts/jhu"
	"github.com/derat/covidcharts/rt"
)

const dateLayout = "20060102"

func main() {
	now := time.Now()
	def := rt.DefaultParams()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] <cases.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	entity := flag.String("entity", "US", `Entity, e.g. "Italy" or "Canada: Ontario"`)
	start := flag.String("start", "20200301", `Starting date`)
	end := flag.String("end", now.Format(dateLayout), `Ending date`)
	min := flag.Float64("min", def.MinCum, `Cumulative case count at which the series starts`)
	smooth := flag.Int("smooth", def.Smooth, `Smoothing window in days`)
	window := flag.Int("window", def.Window, `Likelihood window in days`)
	mass := flag.Float64("mass", def.Mass, `Credible interval probability mass`)
	out := flag.String("out", "", `Output image path (.png, .svg); empty for interactive gnuplot`)
	size := flag.String("size", "", `Output image size, e.g. "1024,768"`)
	animate := flag.String("animate", "", `Animated GIF path; frames show the estimate growing day by day`)
	delay := flag.Int("delay", 10, `Animation frame delay in 1/100 s`)
	flag.Parse()

	if len(flag.Args()) != 1 {
		flag.Usage()
		os.Exit(2)
	}
	startDate, err := time.Parse(dateLayout, *start)
	if err != nil {
		log.Fatalf("Bad -start date %q: %v", *start, err)
	}
	endDate, err := time.Parse(dateLayout, *end)
	if err != nil {
		log.Fatalf("Bad -end date %q: %v", *end, err)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal("Failed opening input: ", err)
	}
	table, err := jhu.Read(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed reading %v: %v", flag.Arg(0), err)
	}

	series, err := table.Series(*entity)
	if err != nil {
		log.Fatalf("Failed getting series: %v", err)
	}

	params := def
	params.MinCum = *min
	params.Smooth = *smooth
	params.Window = *window
	params.Mass = *mass
	pts, err := rt.Estimate(series.Clip(startDate, endDate), params)
	if err != nil {
		log.Fatal("Failed estimating: ", err)
	}

	dp, err := writeData(pts)
	if err != nil {
		log.Fatal("Failed writing data file: ", err)
	}
	defer os.Remove(dp)

	title := fmt.Sprintf("Effective Reproduction Number R_t for %s", *entity)

	if err := plot(dp, title, *mass,
		&gnuplot.Output{Path: *out, Size: *size}); err != nil {
		log.Fatal("Failed plotting: ", err)
	}
	if *animate != "" {
		if err := plotAnimation(dp, title, *mass, len(pts),
			&gnuplot.Output{Path: *animate, Size: *size, Animate: true, Delay: *delay}); err != nil {
			log.Fatal("Failed animating: ", err)
		}
	}
}

// writeData writes one tab-separated line per estimated day:
// date, interval low, interval high, most likely rate.
// The file's path is returned.
func writeData(pts []rt.Point) (string, error) {
	return filewriter.Temp("rtplot.data.", func(fw *filewriter.FileWriter) {
		// No header row: the animation template indexes rows with "every".
		for _, pt := range pts {
			fw.Row(pt.Date.Format(dateLayout),
				fmt.Sprintf("%.2f", pt.Low),
				fmt.Sprintf("%.2f", pt.High),
				fmt.Sprintf("%.2f", pt.MostLikely))
		}
	})
}

func plot(dataPath, title string, mass float64, out *gnuplot.Output) error {
	setTerm, err := out.SetTerm()
	if err != nil {
		return err
	}
	return gnuplot.ExecTemplate(rtTmpl, rtTmplData{
		Title:       title,
		BandTitle:   fmt.Sprintf("%d%% credible interval", int(mass*100+0.5)),
		DataPath:    dataPath,
		SetTerm:     setTerm,
		SetOutput:   out.SetOutput(),
		FooterLabel: gnuplot.FooterLabel("https://github.com/CSSEGISandData/COVID-19"),
	})
}

// plotAnimation renders one frame per estimated day, each drawing the
// series up to that day.
func plotAnimation(dataPath, title string, mass float64, numDays int,
	out *gnuplot.Output) error {
	setTerm, err := out.SetTerm()
	if err != nil {
		return err
	}
	return gnuplot.ExecTemplate(rtAnimTmpl, rtTmplData{
		Title:       title,
		BandTitle:   fmt.Sprintf("%d%% credible interval", int(mass*100+0.5)),
		DataPath:    dataPath,
		NumDays:     numDays,
		SetTerm:     setTerm,
		SetOutput:   out.SetOutput(),
		FooterLabel: gnuplot.FooterLabel("https://github.com/CSSEGISandData/COVID-19"),
	})
}
