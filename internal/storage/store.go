package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/topgun/internal/ballistics"
	"github.com/san-kum/topgun/internal/plotdata"
)

const (
	metadataFile = "metadata.json"
	curveFile    = "curve.csv"
)

// ErrInvalidID is returned for record ids that would leave the data directory.
var ErrInvalidID = errors.New("invalid record id")

var curveHeader = []string{"x", "expected", "sd1_upper", "sd1_lower", "sd2_upper", "sd2_lower"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Record describes one saved calculation.
type Record struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Mode      string            `json:"mode"`
	Inputs    ballistics.Inputs `json:"inputs"`
	Free      string            `json:"free"`
	GroupSize float64           `json:"group_size_moa"`
	OneMOA    float64           `json:"one_moa_value"`
	OneMOAFor string            `json:"one_moa_unit"`
	Note      string            `json:"note,omitempty"`
}

// FreeVariable parses the stored free variable name.
func (r *Record) FreeVariable() (ballistics.Variable, error) {
	return ballistics.ParseVariable(r.Free)
}

// NewRecord derives a record from inputs and the free variable.
func NewRecord(mode string, in ballistics.Inputs, free ballistics.Variable) *Record {
	value, unit := ballistics.ValueForOneMOA(in, ballistics.PairExcluding(free))
	return &Record{
		Timestamp: time.Now(),
		Mode:      mode,
		Inputs:    in,
		Free:      free.String(),
		GroupSize: ballistics.GroupSize(in),
		OneMOA:    value,
		OneMOAFor: unit,
	}
}

// Save writes the record's metadata and its sampled curve. The record's ID
// and timestamp are filled in when empty.
func (s *Store) Save(rec *Record, series *plotdata.Series) (string, error) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("%s_%d", rec.Free, rec.Timestamp.UnixNano())
	}
	if err := checkID(rec.ID); err != nil {
		return "", err
	}
	runDir := filepath.Join(s.baseDir, rec.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), rec); err != nil {
		return "", err
	}
	if err := writeCurve(filepath.Join(runDir, curveFile), series); err != nil {
		return "", err
	}

	slog.Info("saved calculation", "id", rec.ID, "free", rec.Free, "moa", rec.GroupSize)
	return rec.ID, nil
}

func writeJSON(path string, rec *Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func writeCurve(path string, series *plotdata.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := WriteCurve(w, series); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// WriteCurve writes a header row followed by one row per sample.
func WriteCurve(w *csv.Writer, series *plotdata.Series) error {
	if err := w.Write(curveHeader); err != nil {
		return err
	}
	for i, p := range series.Expected {
		row := []string{
			formatFloat(p.X),
			formatFloat(p.Y),
			formatFloat(series.SD1Upper[i].Y),
			formatFloat(series.SD1Lower[i].Y),
			formatFloat(series.SD2Upper[i].Y),
			formatFloat(series.SD2Lower[i].Y),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns saved records, oldest first.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	records := make([]Record, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rec, err := s.Load(entry.Name())
		if err != nil {
			slog.Debug("skipping unreadable record", "dir", entry.Name(), "err", err)
			continue
		}
		records = append(records, *rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

func checkID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func (s *Store) Load(id string) (*Record, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("record %s: %w", id, err)
	}
	return &rec, nil
}

// LoadCurve reads the stored expected curve and rebuilds its bands.
func (s *Store) LoadCurve(id string) (*plotdata.Series, error) {
	rec, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	free, err := rec.FreeVariable()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, id, curveFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	expected := make([]plotdata.Point, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("curve %s: row %d: want at least 2 fields, got %d", id, i+1, len(row))
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("curve %s: row %d: %w", id, i+1, err)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("curve %s: row %d: %w", id, i+1, err)
		}
		expected = append(expected, plotdata.Point{X: x, Y: y})
	}

	return plotdata.FromExpected(free, expected), nil
}
