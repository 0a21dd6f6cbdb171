package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"nodegraph/internal/geometry"
	"nodegraph/internal/graph"
	"nodegraph/internal/introspect"
	"nodegraph/internal/loader"
	"nodegraph/internal/watcher"
)

const inspectColumns = 4

func inspectCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "inspect <file.go>...",
		Short: "Build a node for every function declared in Go source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := a.inspect(out, args)
			if !watch {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			w := watcher.New(args, func(path string) {
				subtle.Fprintf(out, "\n  %s changed\n\n", path)
				if err := a.inspect(out, args); err != nil {
					a.log.V(1).Info("inspect after change failed", "error", err.Error())
				}
			}, watcher.WithLogger(a.log.WithName("watcher")))
			if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-inspect whenever a file changes")

	return cmd
}

// inspect prints one node per function in paths. Files that fail to parse
// are reported and skipped; their errors are returned combined.
func (a *app) inspect(out io.Writer, paths []string) error {
	sigs, scanErr := loader.ScanGoFiles(paths...)
	for _, err := range multierr.Errors(scanErr) {
		warn.Fprintf(out, "  skipped: %v\n", err)
	}

	layout := a.cfg.NodeLayout()
	factory := introspect.NewFactory(introspect.WithLayout(layout), introspect.WithLogger(a.log))
	canvas := graph.NewCanvas(graph.WithLogger(a.log))

	cell := geometry.Size{W: layout.Base.W * 1.5, H: layout.Base.H * 2.5}
	var rows [][]string
	for i, sig := range sigs {
		pos := geometry.Pt(float64(i%inspectColumns)*cell.W, float64(i/inspectColumns)*cell.H)
		n, err := factory.FromSignature(sig, pos)
		if err != nil {
			warn.Fprintf(out, "  %s: %v\n", sig.Qualified, err)
			continue
		}
		if err := canvas.AddNode(n); err != nil {
			return err
		}
		params := sig.Params
		if sig.Variadic && len(params) > 0 {
			params = append(params[:len(params)-1:len(params)-1], params[len(params)-1]+"...")
		}
		rows = append(rows, []string{
			sig.Qualified,
			joinOrDash(params),
			strconv.Itoa(sig.Results),
			n.Body().String(),
		})
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "  No functions found.")
		return scanErr
	}
	brand.Fprintf(out, "  %d nodes\n\n", len(rows))
	table(out, []string{"FUNCTION", "INPUTS", "RESULTS", "BODY"}, rows)
	return scanErr
}
