package cmd

import (
	"blend/core"
	"blend/handler/param"
	"blend/handler/views"
	"blend/pkg/id"
	"blend/pkg/number"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

// printFields prints the exported fields of v, one per line, named by their json tag
func printFields(v interface{}) {
	for _, f := range structs.New(v).Fields() {
		if !f.IsExported() {
			continue
		}

		name := strings.Split(f.Tag(structs.DefaultTagName), ",")[0]
		if name == "" || name == "-" {
			name = f.Name()
		}

		fmt.Printf("%-24s %v\n", name, f.Value())
	}
}

func provideBackstop() core.IBackstopService {
	marketSrv := provideMarketService(provideModifierStore())
	return provideBackstopService(marketSrv, providePriceService())
}

var q4wCmd = &cobra.Command{
	Use:   "q4w",
	Short: "print the backstop summary and recommended queue for withdrawal delay",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		poolID, _ := cmd.Flags().GetString("pool")

		pool, err := provideSnapshotStore().Find(ctx, poolID)
		if err != nil {
			return fmt.Errorf("find pool %q: %w", poolID, err)
		}

		summary, err := provideBackstop().Summary(ctx, pool, time.Now())
		if err != nil {
			return err
		}

		v := views.BackstopView(summary)
		fmt.Printf("status        %s\n", v.Status)
		fmt.Printf("utilization   %s\n", number.Percent(v.Utilization, 2))
		fmt.Printf("backstop apr  %s\n", number.Percent(v.BackstopAPR, 2))
		fmt.Printf("emissions apr %s\n", number.Percent(v.EmissionsAPR, 2))
		fmt.Printf("q4w delay     %s\n", summary.Q4W.Delay)
		for _, reason := range v.Q4WReasons {
			fmt.Printf("  - %s\n", reason)
		}

		return nil
	},
}

var withdrawalImpactCmd = &cobra.Command{
	Use:   "withdrawal-impact",
	Short: "classify the impact of a queued withdrawal on the backstop",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		poolID, _ := cmd.Flags().GetString("pool")
		withdrawalID, _ := cmd.Flags().GetString("withdrawal")

		pool, err := provideSnapshotStore().Find(ctx, poolID)
		if err != nil {
			return fmt.Errorf("find pool %q: %w", poolID, err)
		}

		impact, err := provideBackstop().WithdrawalImpact(ctx, pool, withdrawalID)
		if err != nil {
			return err
		}

		printFields(views.WithdrawalImpactView(impact))
		return nil
	},
}

var auctionParamsCmd = &cobra.Command{
	Use:   "auction-params",
	Short: "derive the parameters of a new auction",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		typ, _ := cmd.Flags().GetString("type")
		auctionType, err := core.ParseAuctionType(typ)
		if err != nil {
			return err
		}

		u, _ := cmd.Flags().GetString("urgency")
		urgency, err := core.ParseUrgency(u)
		if err != nil {
			return err
		}

		v, _ := cmd.Flags().GetString("value")
		value, err := param.Decimal("value", v)
		if err != nil {
			return err
		}

		params, err := provideBackstop().AuctionParameters(ctx, auctionType, urgency, value)
		if err != nil {
			return err
		}

		if poolID, _ := cmd.Flags().GetString("pool"); poolID != "" {
			asset, _ := cmd.Flags().GetString("asset")
			fmt.Printf("%-24s %s\n", "auction_id", id.FromName(poolID, string(auctionType), asset))
		}

		printFields(params)
		return nil
	},
}

var validateBidCmd = &cobra.Command{
	Use:   "validate-bid",
	Short: "validate a bid against an auction",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		poolID, _ := cmd.Flags().GetString("pool")
		auctionID, _ := cmd.Flags().GetString("auction")
		bidder, _ := cmd.Flags().GetString("bidder")

		a, _ := cmd.Flags().GetString("amount")
		amount, err := param.Decimal("amount", a)
		if err != nil {
			return err
		}

		pool, err := provideSnapshotStore().Find(ctx, poolID)
		if err != nil {
			return fmt.Errorf("find pool %q: %w", poolID, err)
		}

		result, err := provideBackstop().ValidateBid(ctx, pool, auctionID, bidder, amount, time.Now())
		if err != nil {
			return err
		}

		fmt.Println("valid:", result.IsValid)
		if len(result.Issues) > 0 {
			fmt.Println("issues:\n  - " + strings.Join(result.Issues, "\n  - "))
		}
		if len(result.Warnings) > 0 {
			fmt.Println("warnings:\n  - " + strings.Join(result.Warnings, "\n  - "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(q4wCmd, withdrawalImpactCmd, auctionParamsCmd, validateBidCmd)

	q4wCmd.Flags().String("pool", "", "pool id")
	_ = q4wCmd.MarkFlagRequired("pool")

	withdrawalImpactCmd.Flags().String("pool", "", "pool id")
	withdrawalImpactCmd.Flags().String("withdrawal", "", "queued withdrawal id")
	_ = withdrawalImpactCmd.MarkFlagRequired("pool")
	_ = withdrawalImpactCmd.MarkFlagRequired("withdrawal")

	auctionParamsCmd.Flags().String("type", "", "auction type, bad_debt liquidation or interest")
	auctionParamsCmd.Flags().String("urgency", "medium", "low, medium or high")
	auctionParamsCmd.Flags().String("value", "", "asset value in usd")
	auctionParamsCmd.Flags().String("pool", "", "pool id, prints the derived auction id when set")
	auctionParamsCmd.Flags().String("asset", "", "auctioned asset")
	_ = auctionParamsCmd.MarkFlagRequired("type")
	_ = auctionParamsCmd.MarkFlagRequired("value")

	validateBidCmd.Flags().String("pool", "", "pool id")
	validateBidCmd.Flags().String("auction", "", "auction id")
	validateBidCmd.Flags().String("bidder", "", "bidder address")
	validateBidCmd.Flags().String("amount", "", "bid in usd")
	_ = validateBidCmd.MarkFlagRequired("pool")
	_ = validateBidCmd.MarkFlagRequired("auction")
	_ = validateBidCmd.MarkFlagRequired("amount")
}
