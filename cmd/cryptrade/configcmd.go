package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/newthinker/cryptrade/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE:  a.runConfig,
	}
}

func (a *app) runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	res := a.res
	r := res.Config.Redacted()

	file := res.FilePath
	if file == "" {
		file = "none"
	}
	fmt.Fprintf(out, "Config file: %s\n\n", file)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\tSOURCE\t")
	fmt.Fprintln(w, "---\t-----\t------\t")
	for _, key := range config.Keys {
		v, _ := r.Get(key)
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", key, displayValue(key, v), res.Source(key))
	}
	return w.Flush()
}
