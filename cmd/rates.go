package cmd

import (
	"blend/core"
	"blend/handler/param"
	"blend/handler/views"
	"blend/pkg/number"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "print the reserve rates of a pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		poolID, _ := cmd.Flags().GetString("pool")
		at, _ := cmd.Flags().GetString("at")

		atTime, err := param.Time(at, time.Time{})
		if err != nil {
			return err
		}

		pool, err := provideSnapshotStore().Find(ctx, poolID)
		if err != nil {
			return fmt.Errorf("find pool %q: %w", poolID, err)
		}

		marketSrv := provideMarketService(provideModifierStore())

		var rates []*core.ReserveRates
		if atTime.IsZero() {
			rates, err = marketSrv.PoolRates(ctx, pool, time.Now())
		} else {
			rates, err = marketSrv.PreviewPoolRates(ctx, pool, atTime)
		}
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ASSET\tUTIL\tMODIFIER\tBORROW APR\tBORROW APY\tSUPPLY APR\tSUPPLY APY")
		for _, r := range rates {
			v := views.ReserveRatesView(r)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				assetLabel(v.Symbol, v.AssetID),
				number.Percent(v.Utilization, 2),
				v.Modifier.StringFixed(4),
				number.Percent(v.BorrowAPR, 2),
				number.Percent(v.BorrowAPY, 2),
				number.Percent(v.SupplyAPR, 2),
				number.Percent(v.SupplyAPY, 2),
			)
		}

		return tw.Flush()
	},
}

func assetLabel(symbol, assetID string) string {
	if symbol != "" {
		return symbol
	}

	return assetID
}

func init() {
	rootCmd.AddCommand(ratesCmd)
	ratesCmd.Flags().String("pool", "", "pool id")
	ratesCmd.Flags().String("at", "", "preview the rates at this time, unix seconds or RFC3339")
	_ = ratesCmd.MarkFlagRequired("pool")
}
