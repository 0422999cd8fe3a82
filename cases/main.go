// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

// The cases program charts or summarizes smoothed per-capita daily new
// COVID-19 cases or deaths for a set of countries or provinces, using the
// JHU CSSE wide-format time series and lookup-table CSV files.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/derat/covidcharts/filewriter"
	"github.com/derat/covidcharts/gnuplot"
	"github.com/derat/covidcharts/jhu"
	"github.com/derat/covidcharts/population"
	"github.com/derat/covidcharts/timeseries"
)

const dateLayout = "20060102"

func main() {
	now := time.Now()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] <time-series.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	action := flag.String("action", "plot", `Action to perform ("plot", "summarize")`)
	entities := flag.String("entities", "US",
		`Comma-separated entities, e.g. "US,Italy,Canada: Ontario"`)
	start := flag.String("start", now.AddDate(0, -3, 0).Format(dateLayout), `Starting date`)
	end := flag.String("end", now.Format(dateLayout), `Ending date`)
	metric := flag.String("metric", "cases", `What the input file counts ("cases", "deaths")`)
	lookup := flag.String("lookup", "", `JHU UID/ISO/FIPS lookup table CSV for per-capita rates`)
	per := flag.Float64("per", population.DefaultPer, `Per-capita rate denominator`)
	smooth := flag.Int("smooth", 7, `Smoothing window in days`)
	out := flag.String("out", "", `Output image path (.png, .svg); empty for interactive gnuplot`)
	size := flag.String("size", "", `Output image size, e.g. "1024,768"`)
	flag.Parse()

	if len(flag.Args()) != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *metric != "cases" && *metric != "deaths" {
		log.Fatalf("Bad -metric %q", *metric)
	}
	startDate, err := time.Parse(dateLayout, *start)
	if err != nil {
		log.Fatalf("Bad -start date %q: %v", *start, err)
	}
	endDate, err := time.Parse(dateLayout, *end)
	if err != nil {
		log.Fatalf("Bad -end date %q: %v", *end, err)
	}

	table, err := readTable(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed reading %v: %v", flag.Arg(0), err)
	}

	var lk population.Lookup
	if *lookup != "" {
		if lk, err = readLookup(*lookup); err != nil {
			log.Fatalf("Failed reading %v: %v", *lookup, err)
		}
	}

	// One smoothed daily-new series per requested entity, all on the same
	// dates, plus the raw cumulative total at the end of the range.
	var series []*timeseries.Series
	var sums []summary
	for _, ent := range strings.Split(*entities, ",") {
		ent = strings.TrimSpace(ent)
		raw, err := table.Series(ent)
		if err != nil {
			log.Fatalf("Failed getting series: %v", err)
		}
		s := raw.Diff().Smooth(*smooth).Clip(startDate, endDate)
		if lk != nil {
			pop, ok := lk.Get(ent)
			if !ok {
				log.Fatalf("No population for %q", ent)
			}
			s = population.PerCapita(s, pop, *per)
		}
		series = append(series, s)

		var total float64
		if clipped := raw.Clip(time.Time{}, endDate); clipped.Len() > 0 {
			_, total = clipped.Last()
		}
		sums = append(sums, summary{s, total})
	}

	switch *action {
	case "plot":
		if err := plot(series, *metric, lk != nil, *per, *smooth,
			&gnuplot.Output{Path: *out, Size: *size}); err != nil {
			log.Fatal("Failed plotting: ", err)
		}
	case "summarize":
		if err := summarize(os.Stdout, sums); err != nil {
			log.Fatal("Failed writing summary: ", err)
		}
	default:
		log.Fatalf("Invalid action %q", *action)
	}
}

func readTable(p string) (*jhu.Table, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jhu.Read(f)
}

func readLookup(p string) (population.Lookup, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return population.Read(f)
}

// plot writes the series to a temp data file and renders them with gnuplot.
func plot(series []*timeseries.Series, metric string, perCapita bool,
	per float64, smooth int, out *gnuplot.Output) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to plot")
	}

	dp, err := filewriter.Temp("cases.data.", func(fw *filewriter.FileWriter) {
		names := make([]string, 1+len(series))
		names[0] = "Date"
		for i, s := range series {
			names[i+1] = strings.ReplaceAll(s.Name, "\t", " ")
		}
		fw.Row(names...)

		for i, d := range series[0].Dates {
			cols := make([]string, 1+len(series))
			cols[0] = d.Format(dateLayout)
			for j, s := range series {
				if i < len(s.Values) {
					cols[j+1] = fmt.Sprintf("%.4f", s.Values[i])
				} else {
					cols[j+1] = "?"
				}
			}
			fw.Row(cols...)
		}
	})
	if err != nil {
		return err
	}
	defer os.Remove(dp)

	title := "JHU Daily New "
	if metric == "deaths" {
		title += "Deaths"
	} else {
		title += "Cases"
	}
	if perCapita {
		title += fmt.Sprintf(" per %v", per)
	}
	title += fmt.Sprintf(" (%d-day avg)", smooth)

	ylabel := "New " + metric + " per day"
	if perCapita {
		ylabel += fmt.Sprintf(" per %v", per)
	}

	setTerm, err := out.SetTerm()
	if err != nil {
		return err
	}
	return gnuplot.ExecTemplate(casesTmpl, struct {
		Title       string
		YLabel      string
		DataPath    string
		NumSeries   int
		SetTerm     string
		SetOutput   string
		FooterLabel string
		Linetypes   string
	}{title, ylabel, dp, len(series), setTerm, out.SetOutput(),
		gnuplot.FooterLabel("https://github.com/CSSEGISandData/COVID-19"),
		gnuplot.Linetypes})
}

// summary holds what the summarize action reports for one entity:
// its smoothed daily-new series and its raw cumulative total.
type summary struct {
	series *timeseries.Series
	total  float64
}

// summarize writes a human-readable per-entity summary to w.
func summarize(w io.Writer, sums []summary) error {
	var writeErr error
	writef := func(format string, args ...interface{}) {
		if writeErr == nil {
			_, writeErr = fmt.Fprintf(w, format, args...)
		}
	}

	const dl = "2006-01-02"
	for _, sm := range sums {
		s := sm.series
		if s.Len() == 0 {
			writef("%s: no data in range\n", s.Name)
			continue
		}
		ld, lv := s.Last()
		pd, pv := s.Max()
		writef("%s\n", s.Name)
		writef("  latest: %8.2f on %s\n", lv, ld.Format(dl))
		writef("  peak:   %8.2f on %s\n", pv, pd.Format(dl))
		writef("  total:  %8.0f\n", sm.total)
	}
	return writeErr
}
