package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/topgun/internal/ballistics"
	"github.com/san-kum/topgun/internal/plotdata"
)

func saveDefault(t *testing.T, st *Store, free ballistics.Variable) string {
	t.Helper()
	in := ballistics.DefaultInputs()
	rec := NewRecord("select", in, free)
	id, err := st.Save(rec, plotdata.Generate(in, free))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	return id
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id := saveDefault(t, st, ballistics.RifleWeight)
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	rec, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if rec.Free != "weight" {
		t.Errorf("expected free weight, got %s", rec.Free)
	}
	if rec.OneMOAFor != "lbs" {
		t.Errorf("expected unit lbs, got %s", rec.OneMOAFor)
	}
	if rec.Inputs != ballistics.DefaultInputs() {
		t.Errorf("unexpected inputs %+v", rec.Inputs)
	}
	if math.Abs(rec.GroupSize-ballistics.GroupSize(rec.Inputs)) > 1e-12 {
		t.Errorf("group size %f", rec.GroupSize)
	}

	series, err := st.LoadCurve(id)
	if err != nil {
		t.Fatalf("load curve failed: %v", err)
	}
	if series.Len() != plotdata.Samples {
		t.Errorf("expected %d points, got %d", plotdata.Samples, series.Len())
	}
	if series.Expected[0].X != 5 || series.Expected[series.Len()-1].X != 50 {
		t.Errorf("unexpected domain [%f, %f]", series.Expected[0].X, series.Expected[series.Len()-1].X)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 records, got %d", len(runs))
	}

	in := ballistics.DefaultInputs()
	older := NewRecord("select", in, ballistics.Velocity)
	older.Timestamp = time.Now().Add(-time.Hour)
	if _, err := st.Save(older, plotdata.Generate(in, ballistics.Velocity)); err != nil {
		t.Fatal(err)
	}
	saveDefault(t, st, ballistics.Projectile)

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(runs))
	}
	if runs[0].Free != "velocity" {
		t.Errorf("expected oldest first, got %s", runs[0].Free)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id := saveDefault(t, st, ballistics.Velocity)

	runDir := filepath.Join(tmpDir, id)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "curve.csv")); os.IsNotExist(err) {
		t.Error("curve.csv not created")
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing"); err == nil {
		t.Error("expected error for missing record")
	}
	if _, err := st.LoadCurve("missing"); err == nil {
		t.Error("expected error for missing curve")
	}
}

func TestLoadCurveRejectsBadRows(t *testing.T) {
	cases := map[string]string{
		"short row":  "x,expected\n1000,1.5\n1100\n",
		"bad number": "x,expected\n1000,1.5\n1100,abc\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			st := New(dir)
			id := saveDefault(t, st, ballistics.Velocity)
			if err := os.WriteFile(filepath.Join(dir, id, "curve.csv"), []byte(body), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := st.LoadCurve(id)
			if err == nil {
				t.Fatal("expected error for corrupt curve")
			}
			if !strings.Contains(err.Error(), "row 3") {
				t.Errorf("error should name the row: %v", err)
			}
		})
	}
}

func TestInvalidIDs(t *testing.T) {
	dir := t.TempDir()
	st := New(filepath.Join(dir, "data"))
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	// a record outside the data directory must stay unreachable
	outside := New(dir)
	in := ballistics.DefaultInputs()
	rec := NewRecord("select", in, ballistics.RifleWeight)
	rec.ID = "escape"
	if _, err := outside.Save(rec, plotdata.Generate(in, ballistics.RifleWeight)); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"", ".", "..", "../escape", "a/b", `a\b`} {
		if _, err := st.Load(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Load(%q) err = %v, want ErrInvalidID", id, err)
		}
		if _, err := st.LoadCurve(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("LoadCurve(%q) err = %v, want ErrInvalidID", id, err)
		}
	}

	bad := NewRecord("select", in, ballistics.RifleWeight)
	bad.ID = "../escape2"
	if _, err := st.Save(bad, plotdata.Generate(in, ballistics.RifleWeight)); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Save err = %v, want ErrInvalidID", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape2")); !os.IsNotExist(err) {
		t.Error("save wrote outside the data directory")
	}
}
