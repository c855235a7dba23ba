package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"ict_forex_app_go/config"
	"ict_forex_app_go/models"
	"ict_forex_app_go/services"
)

// simulate prints a deterministic backtest run, optionally exporting it as XLSX.
//
//	go run ./cmd/simulate -seed 20251215 -ticks 100 -export run.xlsx
func main() {
	seed := flag.Uint("seed", uint(config.DefaultBacktestSeed), "stream seed (uint32)")
	ticks := flag.Int("ticks", 0, "number of ticks to advance after the initial series")
	export := flag.String("export", "", "write the run as an XLSX workbook to this path")
	flag.Parse()

	if *seed > 0xFFFFFFFF {
		log.Fatalf("seed %d does not fit in 32 bits", *seed)
	}
	if *ticks < 0 {
		log.Fatal("ticks must not be negative")
	}

	bt := services.NewBacktest(uint32(*seed))
	bt.Advance(*ticks)
	snap := bt.Snapshot()

	out := struct {
		models.BacktestSnapshot
		Chart models.ChartView `json:"chart"`
	}{snap, services.ProjectDefault(snap.Series).View()}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode run: %v", err)
	}

	if *export != "" {
		if err := writeExport(*export, snap); err != nil {
			log.Fatalf("Failed to export run: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *export)
	}
}

// writeExport writes the workbook to path and reports close errors, which is
// where buffered write failures surface.
func writeExport(path string, snap models.BacktestSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := services.WriteSeriesWorkbook(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
