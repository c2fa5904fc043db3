package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/newthinker/cryptrade/internal/broker"
	"github.com/newthinker/cryptrade/internal/core"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuyMarketCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buy-market SYMBOL QUANTITY",
		Short: "Buy QUANTITY of SYMBOL at market price",
		Long: `Build a market buy order for QUANTITY units of SYMBOL, priced in the
default quote asset. QUANTITY is an exact decimal such as 0.01.
The order is printed and not sent.`,
		Args: requireArgs("SYMBOL", "QUANTITY"),
		RunE: a.runBuyMarket,
	}
}

func (a *app) runBuyMarket(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := a.res.Config
	printConfig(out, "buy-market", cfg)

	symbol := args[0]
	quantity, err := broker.ParseQuantity(args[1])
	if err != nil {
		return err
	}

	order, err := broker.NewMarketBuy(symbol, quantity, cfg.QuoteAsset())
	if err != nil {
		return err
	}
	if !order.HasPositiveQuantity() {
		a.log.Warn("market buy quantity is not positive",
			zap.String("symbol", order.Symbol),
			zap.Stringer("quantity", order.Quantity),
		)
	}

	fmt.Fprintf(out, "symbol: %s quantity: %s\n", order.Symbol, order.Quantity)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLIENT ID\tSYMBOL\tQUOTE\tSIDE\tTYPE\tQTY\t")
	fmt.Fprintln(w, "---------\t------\t-----\t----\t----\t---\t")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
		order.ClientOrderID, order.Symbol, order.Quote, order.Side, order.Type, order.Quantity)
	w.Flush()

	a.log.Info("market buy built",
		zap.String("client_order_id", order.ClientOrderID),
		zap.String("symbol", order.Symbol),
		zap.Stringer("quote", order.Quote),
		zap.Stringer("quantity", order.Quantity),
	)
	fmt.Fprintln(out, "done")
	return nil
}

// requireArgs validates positional arguments before any command hook runs,
// naming the first missing one.
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return core.WrapError(core.ErrMissingArgument,
				fmt.Errorf("%s is required", names[len(args)]))
		}
		return cobra.ExactArgs(len(names))(cmd, args)
	}
}
