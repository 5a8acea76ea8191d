package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ssargent/gdsii/pkg/gds"
)

// copyCmd represents the copy command
var copyCmd = &cobra.Command{
	Use:   "copy <src> <dst>",
	Short: "Re-encode a GDSII file into its normal form",
	Long: `Decode a GDSII file and encode it again. The output keeps every
field this tool models, in a stable form: copying the output again
reproduces it byte for byte. Records this tool does not model are
dropped.

Example:
  gdsii copy design.gds normalized.gds`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, dst := args[0], args[1]
		logrus.Debugf("copying %s to %s", src, dst)

		lib, err := gds.ReadFile(src)
		if err != nil {
			return err
		}
		if err := lib.WriteFile(dst); err != nil {
			return err
		}

		srcStat, err := os.Stat(src)
		if err != nil {
			return err
		}
		dstStat, err := os.Stat(dst)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s (%s, from %s)\n", dst,
			humanize.Bytes(uint64(dstStat.Size())), humanize.Bytes(uint64(srcStat.Size())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
