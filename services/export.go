package services

import (
	"fmt"
	"io"

	"ict_forex_app_go/models"

	"github.com/xuri/excelize/v2"
)

const (
	seriesSheet = "Series"
	statsSheet  = "Stats"
)

// WriteSeriesWorkbook writes the snapshot as an XLSX workbook with a Series and a Stats sheet
func WriteSeriesWorkbook(w io.Writer, snap models.BacktestSnapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", seriesSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := f.SetSheetRow(seriesSheet, "A1", &[]interface{}{"Index", "Value"}); err != nil {
		return fmt.Errorf("failed to write series header: %w", err)
	}
	for i, v := range snap.Series {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(seriesSheet, cell, &[]interface{}{i, v}); err != nil {
			return fmt.Errorf("failed to write series row %d: %w", i, err)
		}
	}

	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("failed to create stats sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Seed", snap.Seed},
		{"Ticks", snap.Ticks},
		{"Win rate (%)", snap.Stats.WinRate},
		{"Risk per trade (%)", snap.Stats.Risk},
		{"Max drawdown (%)", snap.Stats.MaxDD},
		{"Monthly return (%)", snap.Stats.MonthRet},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(statsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write stats row %d: %w", i, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
