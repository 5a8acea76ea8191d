package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/gdsii/pkg/gds"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Dump the full contents of a GDSII file",
	Long: `Dump every structure, element and parameter of a GDSII file.

The output format comes from --format, falling back to the configured
default.

Example:
  gdsii dump design.gds --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = cfg.Format
		}

		lib, err := gds.ReadFile(args[0])
		if err != nil {
			return err
		}

		view := newLibraryView(lib)
		switch format {
		case "json":
			data, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		case "yaml":
			data, err := yaml.Marshal(view)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
		case "text":
			dumpText(view)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringP("format", "f", "", "Output format: text, json or yaml")
	rootCmd.AddCommand(dumpCmd)
}

// libraryView flattens a library for serialized output.
type libraryView struct {
	Version    int16           `json:"version" yaml:"version"`
	Name       string          `json:"name" yaml:"name"`
	Modified   string          `json:"modified" yaml:"modified"`
	Accessed   string          `json:"accessed" yaml:"accessed"`
	UserUnits  float64         `json:"user_units" yaml:"user_units"`
	MeterUnits float64         `json:"meter_units" yaml:"meter_units"`
	Structures []structureView `json:"structures" yaml:"structures"`
}

type structureView struct {
	Name     string        `json:"name" yaml:"name"`
	Modified string        `json:"modified" yaml:"modified"`
	Accessed string        `json:"accessed" yaml:"accessed"`
	Elements []elementView `json:"elements" yaml:"elements"`
}

type elementView struct {
	Kind   string      `json:"kind" yaml:"kind"`
	Params []paramView `json:"params" yaml:"params"`
}

type paramView struct {
	Kind  string      `json:"kind" yaml:"kind"`
	Value interface{} `json:"value" yaml:"value"`
}

func newLibraryView(lib *gds.Library) libraryView {
	view := libraryView{
		Version:    lib.Version,
		Name:       lib.Name,
		Modified:   lib.Modified.String(),
		Accessed:   lib.Accessed.String(),
		UserUnits:  lib.UserUnits,
		MeterUnits: lib.MeterUnits,
	}
	for _, s := range lib.Structures {
		sv := structureView{
			Name:     s.Name,
			Modified: s.Modified.String(),
			Accessed: s.Accessed.String(),
		}
		for _, e := range s.Elements {
			ev := elementView{Kind: e.Kind.String()}
			for _, p := range e.Params {
				ev.Params = append(ev.Params, newParamView(p))
			}
			sv.Elements = append(sv.Elements, ev)
		}
		view.Structures = append(view.Structures, sv)
	}
	return view
}

func newParamView(p gds.Param) paramView {
	switch v := p.(type) {
	case gds.Layer:
		return paramView{Kind: "layer", Value: int16(v)}
	case gds.XY:
		pts := make([][2]int32, len(v))
		for i, pt := range v {
			pts[i] = [2]int32{pt.X, pt.Y}
		}
		return paramView{Kind: "xy", Value: pts}
	case gds.Datatype:
		return paramView{Kind: "datatype", Value: int16(v)}
	case gds.Width:
		return paramView{Kind: "width", Value: int32(v)}
	case gds.StructureName:
		return paramView{Kind: "sname", Value: string(v)}
	case gds.ColRow:
		return paramView{Kind: "colrow", Value: []int16(v)}
	case gds.TextType:
		return paramView{Kind: "texttype", Value: int16(v)}
	case gds.Presentation:
		return paramView{Kind: "presentation", Value: uint16(v)}
	case gds.Text:
		return paramView{Kind: "string", Value: string(v)}
	case gds.STrans:
		return paramView{Kind: "strans", Value: uint16(v)}
	case gds.Mag:
		return paramView{Kind: "mag", Value: float64(v)}
	case gds.Angle:
		return paramView{Kind: "angle", Value: float64(v)}
	case gds.PathType:
		return paramView{Kind: "pathtype", Value: int16(v)}
	case gds.EFlags:
		return paramView{Kind: "eflags", Value: uint16(v)}
	case gds.NodeType:
		return paramView{Kind: "nodetype", Value: int16(v)}
	case gds.BeginExt:
		return paramView{Kind: "bgnextn", Value: int32(v)}
	default:
		return paramView{Kind: "unknown"}
	}
}

func dumpText(view libraryView) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Library:\t%s\n", view.Name)
	fmt.Fprintf(w, "Version:\t%d\n", view.Version)
	fmt.Fprintf(w, "Modified:\t%s\n", view.Modified)
	fmt.Fprintf(w, "Accessed:\t%s\n", view.Accessed)
	fmt.Fprintf(w, "Units:\t%g user / %g m\n", view.UserUnits, view.MeterUnits)

	for _, s := range view.Structures {
		fmt.Fprintf(w, "Structure:\t%s\n", s.Name)
		for _, e := range s.Elements {
			fmt.Fprintf(w, "  %s\n", e.Kind)
			for _, p := range e.Params {
				fmt.Fprintf(w, "    %s:\t%v\n", p.Kind, p.Value)
			}
		}
	}
}
