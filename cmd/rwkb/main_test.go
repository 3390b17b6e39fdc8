package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-echo/internal/logging"
	"github.com/cwbudde/algo-echo/internal/testutil"
	"github.com/cwbudde/algo-echo/physics/wkb"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readTable(t *testing.T, path string) ([]string, [][]float64) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("empty csv")
	}

	rows := make([][]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]float64, len(rec))
		for i, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				t.Fatalf("parse %q: %v", cell, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return records[0], rows
}

func TestDriverRoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R_curve.csv")
	stdout, _, err := execute(t, "--mass", "30", "--l", "2", "--fmin", "20", "--fmax", "500", "--n", "5", "--out", out)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(stdout, "Wrote "+out) {
		t.Fatalf("stdout=%q missing confirmation", stdout)
	}

	header, rows := readTable(t, out)
	if strings.Join(header, ",") != "freq_Hz,R" {
		t.Fatalf("header=%v want freq_Hz,R", header)
	}
	if len(rows) != 5 {
		t.Fatalf("rows=%d want=5", len(rows))
	}

	freqs := make([]float64, len(rows))
	r := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			t.Fatalf("row %d has %d columns", i, len(row))
		}
		freqs[i], r[i] = row[0], row[1]
	}
	testutil.RequireSliceNearlyEqual(t, freqs, []float64{20, 140, 260, 380, 500}, 1e-12)
	if freqs[0] != 20 || freqs[4] != 500 {
		t.Fatalf("endpoints %v, %v not exact", freqs[0], freqs[4])
	}
	testutil.RequireInRange(t, r, 0, 1)
	testutil.RequireNonDecreasing(t, r)

	want, _ := wkb.Reflection(260, 2, 30)
	if math.Abs(r[2]-want) > 1e-15 {
		t.Fatalf("R(260 Hz)=%v want=%v", r[2], want)
	}
}

func TestDriverDefaults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R_curve.csv")
	if _, _, err := execute(t, "--mass", "10", "--out", out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	_, rows := readTable(t, out)
	if len(rows) != 1000 {
		t.Fatalf("rows=%d want=1000", len(rows))
	}
	if rows[0][0] != 20 || rows[999][0] != 500 {
		t.Fatalf("frequency range %v..%v want 20..500", rows[0][0], rows[999][0])
	}
}

func TestDriverDefaultOutputName(t *testing.T) {
	cmd := newRootCmd()
	if got := cmd.Flags().Lookup("out").DefValue; got != "R_curve.csv" {
		t.Fatalf("default out=%q want=R_curve.csv", got)
	}
	for name, want := range map[string]string{"l": "2", "fmin": "20", "fmax": "500", "n": "1000"} {
		if got := cmd.Flags().Lookup(name).DefValue; got != want {
			t.Fatalf("--%s default=%q want=%q", name, got, want)
		}
	}
}

func TestDriverMissingMass(t *testing.T) {
	_, _, err := execute(t, "--l", "2")
	if err == nil || !strings.Contains(err.Error(), "mass") {
		t.Fatalf("error=%v want required-flag error naming mass", err)
	}
}

func TestDriverInvalidParameters(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"--mass", "30", "--l", "1"}, wkb.ErrInvalidMultipole},
		{[]string{"--mass", "30", "--l", "0"}, wkb.ErrInvalidMultipole},
		{[]string{"--mass", "0"}, wkb.ErrInvalidMass},
		{[]string{"--mass", "30", "--log-level", "verbose"}, logging.ErrUnknownLevel},
	}
	for _, tc := range tests {
		out := filepath.Join(dir, "never.csv")
		_, _, err := execute(t, append(tc.args, "--out", out)...)
		if !errors.Is(err, tc.want) {
			t.Fatalf("args %v: error=%v want=%v", tc.args, err, tc.want)
		}
		if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
			t.Fatalf("args %v: output file written despite error", tc.args)
		}
	}
}

func TestDriverDebugLogging(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R.csv")
	_, stderr, err := execute(t, "--mass", "30", "--n", "3", "--out", out, "--log-level", "debug")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(stderr, "barrier peak") || !strings.Contains(stderr, "rows=3") {
		t.Fatalf("stderr=%q missing debug records", stderr)
	}
}
