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
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/polymodel/polykin"
)

// PlotSeries plots the named recorded variables against time and saves
// the figure to fileName. The extension of fileName selects the image
// format (e.g. .png, .pdf, .svg).
func PlotSeries(rec *polykin.Recorder, vars []string, fileName string) error {
	if len(vars) == 0 {
		return fmt.Errorf("polykin: no variables specified to plot")
	}
	t, err := rec.Column("time")
	if err != nil {
		return err
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "reactor trajectory"
	p.X.Label.Text = "time (h)"
	p.Y.Label.Text = "concentration (mol/L)"

	args := make([]interface{}, 0, 2*len(vars))
	for _, name := range vars {
		v, err := rec.Column(name)
		if err != nil {
			return err
		}
		xy := make(plotter.XYs, len(t))
		for i := range t {
			xy[i].X = t[i]
			xy[i].Y = v[i]
		}
		args = append(args, name, xy)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, fileName)
}
