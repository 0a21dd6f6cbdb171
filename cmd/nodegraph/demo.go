package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nodegraph/internal/geometry"
	"nodegraph/internal/graph"
	"nodegraph/internal/interact"
	"nodegraph/internal/introspect"
	"nodegraph/internal/loader"
)

const demoPalette = `
version: "1"
description: built-in demo palette
templates:
  - name: const
    label: Constant
    outputs: [value]
  - name: add
    label: Add
    inputs: [a, b]
    outputs: [sum]
  - name: print
    label: Print
    inputs: [value]
`

const demoScript = `
# two constants feeding an adder
node a const 0 0
node b const 0 150
node sum add 250 60
node out print 500 60

click a out value
click sum in a

# pressing the same port twice aborts
click b out value
click b out value

click b out value
click sum in b
click sum out sum
click out in value

drag sum 260 90

# space spawns blend() through the reflective factory
key space
click spawn1 out return
key escape

select sum
key delete
`

// blend is what the space key spawns in the demo
func blend(base, overlay string, opacity float64) string {
	if opacity >= 0.5 {
		return overlay
	}
	return base
}

// demoSpawn carries its own schema so the demo works without blend's
// source file on disk
var demoSpawn = introspect.Describe("blend", blend, "base", "overlay", "opacity")

func demoCmd(a *app) *cobra.Command {
	var scriptPath, palettePath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay an editing session and print every canvas event",
		Long: "Replay an editing session and print every canvas event.\n\n" +
			"Script lines:\n" +
			"  node <alias> <template> [x y]\n" +
			"  click <alias> in|out <port>\n" +
			"  select <alias>|-\n" +
			"  key escape|delete|space\n" +
			"  drag <alias> <x> <y>",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			palette, err := demoPaletteFrom(palettePath, a.cfg.Palette.Path)
			if err != nil {
				return err
			}

			var script io.Reader = strings.NewReader(demoScript)
			if scriptPath != "" {
				f, err := os.Open(scriptPath)
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				script = f
			}

			layout := a.cfg.NodeLayout()
			canvas := graph.NewCanvas(graph.WithLogger(a.log.WithName("canvas")))
			canvas.Events().Subscribe(func(e graph.Event) {
				printEvent(out, e)
			})
			factory := introspect.NewFactory(introspect.WithLayout(layout), introspect.WithLogger(a.log.WithName("factory")))
			session := interact.NewSession(canvas,
				interact.WithFactory(factory),
				interact.WithSpawn(demoSpawn, geometry.Pt(250, 250)),
				interact.WithLogger(a.log.WithName("session")),
			)

			r := &scriptRunner{
				session: session,
				palette: palette,
				layout:  layout,
				nodes:   make(map[string]*graph.Node),
			}
			if err := r.run(script); err != nil {
				return err
			}

			printSummary(out, session)
			return nil
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "session script (default: built-in)")
	cmd.Flags().StringVar(&palettePath, "palette", "", "palette YAML file (default: palette.path, then built-in)")

	return cmd
}

func demoPaletteFrom(paths ...string) (*loader.Palette, error) {
	for _, path := range paths {
		if path != "" {
			return loader.LoadPalette(path)
		}
	}
	return loader.ParsePalette([]byte(demoPalette))
}

// scriptRunner feeds script lines into a session
type scriptRunner struct {
	session *interact.Session
	palette *loader.Palette
	layout  graph.Layout
	nodes   map[string]*graph.Node
	spawned int
}

func (r *scriptRunner) run(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	line := 0
	for scanner.Scan() {
		line++
		text, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := r.exec(fields); err != nil {
			return fmt.Errorf("script line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

func (r *scriptRunner) exec(fields []string) error {
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "node":
		return r.addNode(args)
	case "click":
		if len(args) != 3 {
			return fmt.Errorf("usage: click <alias> in|out <port>")
		}
		p, err := r.port(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		r.session.PointerDown(p)
	case "select":
		if len(args) != 1 {
			return fmt.Errorf("usage: select <alias>|-")
		}
		if args[0] == "-" {
			r.session.PointerDown(nil)
			return nil
		}
		n, err := r.node(args[0])
		if err != nil {
			return err
		}
		r.session.PointerDown(n)
	case "key":
		if len(args) != 1 {
			return fmt.Errorf("usage: key escape|delete|space")
		}
		k := interact.ParseKey(args[0])
		if k == interact.KeyUnknown {
			return fmt.Errorf("unknown key %q", args[0])
		}
		before := r.session.Selected()
		if err := r.session.KeyPress(k); err != nil {
			return err
		}
		if k == interact.KeySpace {
			if n := r.session.Selected(); n != nil && n != before {
				r.spawned++
				r.nodes["spawn"+strconv.Itoa(r.spawned)] = n
			}
		}
	case "drag":
		if len(args) != 3 {
			return fmt.Errorf("usage: drag <alias> <x> <y>")
		}
		n, err := r.node(args[0])
		if err != nil {
			return err
		}
		pos, err := parsePoint(args[1:])
		if err != nil {
			return err
		}
		return r.session.NodeDragged(n, pos)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (r *scriptRunner) addNode(args []string) error {
	if len(args) != 2 && len(args) != 4 {
		return fmt.Errorf("usage: node <alias> <template> [x y]")
	}
	alias, tmpl := args[0], args[1]
	if _, dup := r.nodes[alias]; dup {
		return fmt.Errorf("alias %q already used", alias)
	}
	var pos geometry.Point
	if len(args) == 4 {
		var err error
		if pos, err = parsePoint(args[2:]); err != nil {
			return err
		}
	}

	t, ok := r.palette.Template(tmpl)
	if !ok {
		return fmt.Errorf("unknown template %q", tmpl)
	}
	// the alias names the node so events read like the script
	spec := t.Spec(pos, r.layout)
	spec.Name = alias
	n, err := graph.NewNode(spec)
	if err != nil {
		return err
	}
	var addErr error
	r.session.Do(func(c *graph.Canvas) {
		addErr = c.AddNode(n)
	})
	if addErr != nil {
		return addErr
	}
	r.nodes[alias] = n
	return nil
}

func (r *scriptRunner) node(alias string) (*graph.Node, error) {
	n, ok := r.nodes[alias]
	if !ok {
		return nil, fmt.Errorf("unknown node %q", alias)
	}
	return n, nil
}

func (r *scriptRunner) port(alias, side, name string) (*graph.Port, error) {
	n, err := r.node(alias)
	if err != nil {
		return nil, err
	}
	var p *graph.Port
	switch side {
	case "in":
		p = n.Input(name)
	case "out":
		p = n.Output(name)
	default:
		return nil, fmt.Errorf("port side must be in or out, got %q", side)
	}
	if p == nil {
		return nil, fmt.Errorf("%s has no %sput %q", alias, side, name)
	}
	return p, nil
}

func parsePoint(args []string) (geometry.Point, error) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("bad y: %w", err)
	}
	return geometry.Pt(x, y), nil
}

func printEvent(w io.Writer, e graph.Event) {
	name := fmt.Sprintf("%-22s", e.Type)
	switch e.Type {
	case graph.EventNodeAdded, graph.EventNodeMoved:
		fmt.Fprintf(w, "  %s %s at %s\n", info.Sprint(name), e.Node, e.Node.Position())
	case graph.EventNodeRemoved:
		fmt.Fprintf(w, "  %s %s\n", warn.Sprint(name), e.Node)
	case graph.EventWireCreated:
		fmt.Fprintf(w, "  %s %s\n", good.Sprint(name), e.Wire)
	case graph.EventWireRemoved:
		fmt.Fprintf(w, "  %s %s\n", warn.Sprint(name), e.Wire)
	case graph.EventWireGeometryChanged:
		fmt.Fprintf(w, "  %s %s bounds %s\n", subtle.Sprint(name), e.Wire, e.Wire.Bounds())
	case graph.EventPendingChanged:
		if e.Port == nil {
			fmt.Fprintf(w, "  %s idle\n", subtle.Sprint(name))
			return
		}
		fmt.Fprintf(w, "  %s pending %s\n", subtle.Sprint(name), e.Port)
	default:
		fmt.Fprintf(w, "  %s\n", name)
	}
}

func printSummary(w io.Writer, s *interact.Session) {
	s.Do(func(c *graph.Canvas) {
		fmt.Fprintln(w)
		brand.Fprintf(w, "  %d nodes, %d wires\n\n", len(c.Nodes()), len(c.Wires()))

		var rows [][]string
		for _, wire := range c.Wires() {
			rows = append(rows, []string{wire.Source().String(), wire.Destination().String(), wire.Bounds().String()})
		}
		table(w, []string{"SOURCE", "DESTINATION", "BOUNDS"}, rows)

		err := c.Validate()
		fmt.Fprintf(w, "\n  %s invariants\n", statusIcon(err == nil))
		if err != nil {
			bad.Fprintf(w, "  %v\n", err)
		}
	})
}
