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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cellmodel/battmesh/mesh/uniform"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print a summary of the discretisation",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMesh()
			if err != nil {
				return err
			}
			t := m.Time()
			log.WithFields(logrus.Fields{
				"steps": len(t),
				"end":   t[len(t)-1],
			}).Info("time grid")

			for _, d := range []struct {
				name string
				m    *uniform.Mesh1D
			}{
				{"negative electrode", m.NegativeElectrode()},
				{"separator", m.Separator()},
				{"positive electrode", m.PositiveElectrode()},
				{"whole cell", m.WholeCell()},
			} {
				x0, x1 := d.m.Span()
				log.WithFields(logrus.Fields{
					"cells": d.m.Len(),
					"from":  x0,
					"to":    x1,
					"width": d.m.CellWidth(0),
				}).Info(d.name)
			}
			return nil
		},
	}
}
