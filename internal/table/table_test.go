package table

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		0:                  "0",
		20:                 "20",
		140.5:              "140.5",
		0.4993036555288026: "0.4993036555288026",
		1e-7:               "1e-07",
		1e20:               "1e+20",
		-3.25:              "-3.25",
		103078313.41228881: "103078313.41228881",
	}
	for v, want := range cases {
		got := FormatFloat(v)
		if got != want {
			t.Fatalf("FormatFloat(%v)=%q want=%q", v, got, want)
		}
		back, err := strconv.ParseFloat(got, 64)
		if err != nil || back != v {
			t.Fatalf("FormatFloat(%v) does not round-trip: %q", v, got)
		}
	}
}

func TestWriteColumns(t *testing.T) {
	var buf bytes.Buffer
	err := WriteColumns(&buf, []string{"freq_Hz", "R"}, []float64{20, 500}, []float64{0.25, 0.75})
	if err != nil {
		t.Fatalf("WriteColumns error: %v", err)
	}
	want := "freq_Hz,R\n20,0.25\n500,0.75\n"
	if buf.String() != want {
		t.Fatalf("output=%q want=%q", buf.String(), want)
	}
}

func TestWriteColumnsMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteColumns(&buf, []string{"a", "b"}, []float64{1}, []float64{1, 2}); !errors.Is(err, ErrColumnLength) {
		t.Fatalf("error=%v want=%v", err, ErrColumnLength)
	}
	if err := WriteColumns(&buf, []string{"a"}, []float64{1}, []float64{1}); err == nil {
		t.Fatal("expected header/column count error")
	}
}

func TestWriterCells(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Header("mass", "t"); err != nil {
		t.Fatal(err)
	}
	if err := w.Cells("0.5", ""); err != nil {
		t.Fatal(err)
	}
	if err := w.Row(2, 8); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "mass,t\n0.5,\n2,8\n"; got != want {
		t.Fatalf("output=%q want=%q", got, want)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteFile(path, []string{"x"}, []float64{1, 2, 3}); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "x\n1\n2\n3\n" {
		t.Fatalf("file=%q", data)
	}

	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), []string{"x"}, nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
