package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/newthinker/cryptrade/internal/config"
)

// printConfig writes cfg with credentials redacted.
func printConfig(w io.Writer, title string, cfg config.Config) {
	r := cfg.Redacted()

	fmt.Fprintf(w, "%s config:\n", title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range config.Keys {
		v, _ := r.Get(key)
		fmt.Fprintf(tw, "  %s\t%s\t\n", key, displayValue(key, v))
	}
	tw.Flush()
}

func displayValue(key, v string) string {
	if key == config.KeyLogPath && v == "" {
		return "none"
	}
	return fmt.Sprintf("%q", v)
}
