package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAutoSellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "auto-sell",
		Short: "Sell holdings into the default quote asset",
		Args:  cobra.NoArgs,
		RunE:  a.runAutoSell,
	}
}

func (a *app) runAutoSell(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	printConfig(out, "auto-sell", a.res.Config)

	a.log.Info("auto-sell", zap.Stringer("quote", a.res.Config.QuoteAsset()))
	fmt.Fprintln(out, "done")
	return nil
}
