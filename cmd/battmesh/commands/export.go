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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole-cell mesh in its binary format",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMesh()
			if err != nil {
				return err
			}
			b, err := m.WholeCell().MarshalBinary()
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"file":  out,
				"bytes": len(b),
			}).Info("wrote mesh")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "mesh.bin", "output file")
	return cmd
}
