// Package export writes calculations and their curves as JSON, CSV and
// chart images.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/topgun/internal/plotdata"
	"github.com/san-kum/topgun/internal/storage"
)

type ExportData struct {
	Record   *storage.Record  `json:"record"`
	XLabel   string           `json:"x_label"`
	YLabel   string           `json:"y_label"`
	Expected []plotdata.Point `json:"expected"`
	SD1Upper []plotdata.Point `json:"sd1_upper"`
	SD1Lower []plotdata.Point `json:"sd1_lower"`
	SD2Upper []plotdata.Point `json:"sd2_upper"`
	SD2Lower []plotdata.Point `json:"sd2_lower"`
}

func NewExportData(rec *storage.Record, series *plotdata.Series) ExportData {
	return ExportData{
		Record:   rec,
		XLabel:   series.XLabel,
		YLabel:   series.YLabel,
		Expected: series.Expected,
		SD1Upper: series.SD1Upper,
		SD1Lower: series.SD1Lower,
		SD2Upper: series.SD2Upper,
		SD2Lower: series.SD2Lower,
	}
}

func JSON(w io.Writer, rec *storage.Record, series *plotdata.Series) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(rec, series))
}

func JSONFile(path string, rec *storage.Record, series *plotdata.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return JSON(f, rec, series)
}

func CSV(w io.Writer, series *plotdata.Series) error {
	cw := csv.NewWriter(w)
	if err := storage.WriteCurve(cw, series); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
