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
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Knetic/govaluate"
	"github.com/tealeg/xlsx"

	"github.com/polymodel/polykin"
)

// WriteTrajectory writes a recorded trajectory to fileName. The file
// extension selects the format: .csv or .xlsx.
func WriteTrajectory(rec *polykin.Recorder, fileName string) error {
	switch ext := filepath.Ext(fileName); ext {
	case ".csv":
		return writeCSV(rec, fileName)
	case ".xlsx":
		return writeXLSX(rec, fileName)
	default:
		return fmt.Errorf("polykin: invalid output extension %q; valid options are .csv and .xlsx", ext)
	}
}

func header() []string {
	return append([]string{"time"}, polykin.StateNames...)
}

func writeCSV(rec *polykin.Recorder, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("polykin: creating output file: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(header()); err != nil {
		return err
	}
	row := make([]string, len(polykin.StateNames)+1)
	for i := 0; i < rec.Rows(); i++ {
		for j := range row {
			row[j] = strconv.FormatFloat(rec.Data.Get(i, j), 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(rec *polykin.Recorder, fileName string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("trajectory")
	if err != nil {
		return fmt.Errorf("polykin: creating worksheet: %v", err)
	}
	hrow := sheet.AddRow()
	for _, name := range header() {
		hrow.AddCell().SetString(name)
	}
	for i := 0; i < rec.Rows(); i++ {
		row := sheet.AddRow()
		for j := 0; j < len(polykin.StateNames)+1; j++ {
			row.AddCell().SetFloat(rec.Data.Get(i, j))
		}
	}
	return f.Save(fileName)
}

// outputFunctions are the built-in functions available to derived
// output expressions.
var outputFunctions = map[string]govaluate.ExpressionFunction{
	"exp": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("polykin: got %d arguments for function 'exp', but needs 1", len(arg))
		}
		return (float64)(math.Exp(arg[0].(float64))), nil
	},
	"abs": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("polykin: got %d arguments for function 'abs', but needs 1", len(arg))
		}
		return (float64)(math.Abs(arg[0].(float64))), nil
	},
}

// EvalExpressions evaluates named expressions over the final recorded
// state of a trajectory. Expressions may reference any recorded
// variable name (and "time") and the built-in functions exp and abs.
func EvalExpressions(rec *polykin.Recorder, exprs map[string]string) (map[string]float64, error) {
	if rec.Rows() == 0 {
		return nil, fmt.Errorf("polykin: no recorded trajectory to evaluate expressions over")
	}
	last := rec.Rows() - 1
	params := make(map[string]interface{}, len(polykin.StateNames)+1)
	params["time"] = rec.Data.Get(last, 0)
	for i, name := range polykin.StateNames {
		params[name] = rec.Data.Get(last, i+1)
	}

	o := make(map[string]float64, len(exprs))
	for name, exprStr := range exprs {
		expression, err := govaluate.NewEvaluableExpressionWithFunctions(exprStr, outputFunctions)
		if err != nil {
			return nil, fmt.Errorf("polykin: parsing output expression %q: %v", name, err)
		}
		v, err := expression.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("polykin: evaluating output expression %q: %v", name, err)
		}
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("polykin: output expression %q yielded non-numeric result %#v", name, v)
		}
		o[name] = f
	}
	return o, nil
}
