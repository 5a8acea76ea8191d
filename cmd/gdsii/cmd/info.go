package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ssargent/gdsii/pkg/gds"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show summary information for a GDSII file",
	Long: `Show the library header, units and per-structure element counts
of a GDSII file.

Example:
  gdsii info design.gds`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logrus.Debugf("reading %s", path)

		lib, err := gds.ReadFile(path)
		if err != nil {
			return err
		}

		stat, err := os.Stat(path)
		if err != nil {
			return err
		}

		fmt.Println(lib)
		fmt.Printf("File size: %s\n", humanize.Bytes(uint64(stat.Size())))
		fmt.Printf("Units: %g user / %g m\n", lib.UserUnits, lib.MeterUnits)
		fmt.Printf("Structures: %d\n", len(lib.Structures))
		for _, s := range lib.Structures {
			fmt.Printf("  %s: %d element(s)\n", s.Name, len(s.Elements))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
