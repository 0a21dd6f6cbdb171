// Command nodegraph exercises the node-graph core from the terminal: it
// turns Go functions into nodes, lists template palettes and replays
// scripted editing sessions.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		bad.Fprintf(os.Stderr, "nodegraph: %v\n", err)
		os.Exit(1)
	}
}
