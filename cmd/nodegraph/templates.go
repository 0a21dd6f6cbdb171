package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"nodegraph/internal/geometry"
	"nodegraph/internal/loader"
)

func templatesCmd(a *app) *cobra.Command {
	var palettePath string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the node templates of a palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if palettePath == "" {
				palettePath = a.cfg.Palette.Path
			}
			if palettePath == "" {
				return errors.New("no palette configured; pass --palette or set palette.path")
			}

			p, err := loader.LoadPalette(palettePath)
			if err != nil {
				return fmt.Errorf("load palette %s: %w", palettePath, err)
			}

			layout := a.cfg.NodeLayout()
			var rows [][]string
			for _, t := range p.Templates() {
				n, err := p.Instantiate(t.Name, geometry.Point{}, layout)
				if err != nil {
					return err
				}
				size := n.Size()
				rows = append(rows, []string{
					t.Name,
					t.Label,
					joinOrDash(t.Inputs),
					joinOrDash(t.Outputs),
					fmt.Sprintf("%gx%g", size.W, size.H),
				})
			}

			if p.Description != "" {
				subtle.Fprintf(out, "  %s\n\n", p.Description)
			}
			if len(rows) == 0 {
				fmt.Fprintln(out, "  Palette is empty.")
				return nil
			}
			table(out, []string{"NAME", "LABEL", "INPUTS", "OUTPUTS", "SIZE"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&palettePath, "palette", "", "palette YAML file (overrides palette.path)")

	return cmd
}
