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

// Package commands implements the battmesh command line interface.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cellmodel/battmesh/disc"
	"github.com/cellmodel/battmesh/params"
)

var (
	log = logrus.New()

	paramFile  string
	targetNPts int
	timeSteps  int
	endTime    float64
	verbose    bool
)

func Execute() error {
	root := &cobra.Command{
		Use:   "battmesh",
		Short: "Space and time discretisation for battery cell simulation",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	defaults := disc.DefaultConfig()
	root.PersistentFlags().StringVar(&paramFile, "params", "", "cell geometry TOML file (default: built-in lithium-ion cell)")
	root.PersistentFlags().IntVar(&targetNPts, "npts", defaults.TargetNPoints, "target number of points per subdomain")
	root.PersistentFlags().IntVar(&timeSteps, "tsteps", defaults.TimeSteps, "number of time steps")
	root.PersistentFlags().Float64Var(&endTime, "tend", defaults.EndTime, "simulation end time in seconds")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(infoCmd(), plotCmd(), exportCmd())
	return root.Execute()
}

// buildMesh discretises the cell described by the command line flags.
func buildMesh() (*disc.Mesh, error) {
	p := params.Default()
	if paramFile != "" {
		var err error
		p, err = params.Load(paramFile)
		if err != nil {
			return nil, err
		}
		log.WithField("file", paramFile).Debug("loaded cell geometry")
	}
	return disc.New(p, disc.Config{
		TargetNPoints: targetNPts,
		TimeSteps:     timeSteps,
		EndTime:       endTime,
	})
}
