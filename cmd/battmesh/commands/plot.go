/*
Copyright © 2026 the BattMesh authors.
This file is part of BattMesh.

BattMesh is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

BattMesh is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with BattMesh.  If not, see <http://www.gnu.org/licenses/>.
*/

package commands

import (
	"github.com/spf13/cobra"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cellmodel/battmesh/plot"
)

func plotCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot cell widths across the whole cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMesh()
			if err != nil {
				return err
			}
			p := gplot.New()
			p.Title.Text = "Mesh resolution"
			p.X.Label.Text = "position (m)"
			p.Y.Label.Text = "cell width (m)"
			l, err := plotter.NewLine(plot.CellWidths(m.WholeCell()))
			if err != nil {
				return err
			}
			p.Add(l)
			if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
				return err
			}
			log.WithField("file", out).Info("wrote mesh plot")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "mesh.png", "output image file")
	return cmd
}
