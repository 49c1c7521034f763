package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChenLight-s/qcad"
	"github.com/ChenLight-s/qcad/export"
	"github.com/ChenLight-s/qcad/script"
	"github.com/ChenLight-s/qcad/text"
)

// runCmd executes a Lua drawing script against a fresh document.
var runCmd = &cobra.Command{
	Use:   "run <script.lua>",
	Short: "Run a drawing script and export the document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svgPath, _ := cmd.Flags().GetString("svg")
		pngPath, _ := cmd.Flags().GetString("png")
		fontPaths, _ := cmd.Flags().GetStringSlice("font")
		scale, _ := cmd.Flags().GetFloat64("scale")

		fonts := text.DefaultRegistry()
		for _, path := range fontPaths {
			source, err := text.NewSourceFromFile(path)
			if err != nil {
				return err
			}
			fonts.Register(source.Name(), source)
		}

		doc := qcad.NewDocument()
		app := qcad.NewApplication(qcad.WithDocument(doc))
		session := qcad.NewScript(app)

		runner := script.NewRunner(session)
		if err := runner.RunFile(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Printf("%d entities on %d layers\n", doc.EntityCount(), len(doc.Layers()))

		if svgPath != "" {
			if err := writeSVG(svgPath, doc); err != nil {
				return err
			}
		}
		if pngPath != "" {
			if err := writePNG(pngPath, doc, fonts, scale); err != nil {
				return err
			}
		}
		return nil
	},
}

func writeSVG(path string, doc *qcad.Document) error {
	var buf strings.Builder
	if err := export.SVG(&buf, doc, nil); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(buf.String()), 0o644)
}

func writePNG(path string, doc *qcad.Document, fonts *text.Registry, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.PNG(f, doc, &export.PNGOptions{Scale: scale, Fonts: fonts}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("svg", "", "Write the document as SVG to the given path")
	runCmd.Flags().String("png", "", "Write the document as PNG to the given path")
	runCmd.Flags().StringSlice("font", nil, "Register a TTF font file (repeatable)")
	runCmd.Flags().Float64("scale", 10, "PNG pixels per drawing unit")
}
