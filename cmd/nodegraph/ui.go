package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	brand  = color.New(color.FgHiMagenta, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
	info   = color.New(color.FgCyan)
	warn   = color.New(color.FgYellow)
)

// table prints rows aligned under headers
func table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i := 0; i < min(len(row), len(widths)); i++ {
			widths[i] = max(widths[i], len(row[i]))
		}
	}

	var head, rule strings.Builder
	for i, h := range headers {
		fmt.Fprintf(&head, "  %-*s", widths[i], h)
		rule.WriteString("  " + strings.Repeat("─", widths[i]))
	}
	subtle.Fprintln(w, head.String())
	subtle.Fprintln(w, rule.String())

	for _, row := range rows {
		var line strings.Builder
		for i := 0; i < min(len(row), len(widths)); i++ {
			fmt.Fprintf(&line, "  %-*s", widths[i], row[i])
		}
		fmt.Fprintln(w, line.String())
	}
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func statusIcon(ok bool) string {
	if ok {
		return good.Sprint("✓")
	}
	return bad.Sprint("✗")
}
