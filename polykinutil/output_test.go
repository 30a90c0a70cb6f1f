/*
Copyright © 2018 the PolyKin authors.
This file is part of PolyKin.

PolyKin is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

PolyKin is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with PolyKin.  If not, see <http://www.gnu.org/licenses/>.
*/

package polykinutil

import (
	"encoding/csv"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/polymodel/polykin"
)

func testRecorder() *polykin.Recorder {
	rec := polykin.NewRecorder(1)
	s := make([]float64, len(polykin.StateNames))
	s[0], s[1] = 0.8, 0.2 // ethylene, hexene
	rec.Record(0, s)
	s[0], s[1] = 0.6, 0.15
	rec.Record(0.5, s)
	return rec
}

func TestWriteTrajectoryCSV(t *testing.T) {
	dir, err := ioutil.TempDir("", "polykinutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "out.csv")
	if err := WriteTrajectory(testRecorder(), file); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 (header + 2 records)", len(rows))
	}
	if rows[0][0] != "time" || rows[0][1] != "ethylene" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "0.8" || rows[2][0] != "0.5" || rows[2][1] != "0.6" {
		t.Errorf("data rows = %v, %v", rows[1], rows[2])
	}
}

func TestWriteTrajectoryBadExtension(t *testing.T) {
	if err := WriteTrajectory(testRecorder(), "out.txt"); err == nil {
		t.Error("expected extension error, got none")
	}
}

func TestEvalExpressions(t *testing.T) {
	exprs := map[string]string{
		"conversion": "(0.8 - ethylene) / 0.8",
		"ratio":      "ethylene / hexene",
		"decay":      "exp(-time)",
		"distance":   "abs(hexene - ethylene)",
	}
	o, err := EvalExpressions(testRecorder(), exprs)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{
		"conversion": 0.25,
		"ratio":      4,
		"decay":      math.Exp(-0.5),
		"distance":   0.45,
	}
	for name, w := range want {
		if math.Abs(o[name]-w) > 1e-12 {
			t.Errorf("%s = %g, want %g", name, o[name], w)
		}
	}
}

func TestEvalExpressionsErrors(t *testing.T) {
	rec := testRecorder()
	if _, err := EvalExpressions(rec, map[string]string{"bad": "ethylene +* 2"}); err == nil {
		t.Error("unparsable expression: expected error, got none")
	}
	if _, err := EvalExpressions(rec, map[string]string{"bad": "nosuchvar * 2"}); err == nil {
		t.Error("unknown variable: expected error, got none")
	}
	if _, err := EvalExpressions(polykin.NewRecorder(0), map[string]string{"x": "1"}); err == nil {
		t.Error("empty trajectory: expected error, got none")
	}
}
