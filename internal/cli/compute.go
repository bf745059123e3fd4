package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"option-strategist/internal/engine"
	apperrors "option-strategist/internal/errors"
	"option-strategist/internal/models"
)

func newComputeCmd(app *App) *cobra.Command {
	var (
		price           float64
		buyStrike       float64
		sellStrike      float64
		premiumPaid     float64
		premiumReceived float64
		contracts       int
		expiry          string
		edits           []string
	)

	computeCmd := &cobra.Command{
		Use:   "compute <strategy>",
		Short: "Compute the payoff curve and risk metrics for a strategy",
		Long: `Compute builds the legs for a strategy from its parameters, samples
the expiry payoff across a price range around the current price, and
reports maximum gain, maximum loss and the breakeven price.

Repeated --edit flags re-run the calculation after changing one field,
for example --edit buyStrike=105.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)

			kind := models.StrategyKind(args[0])
			params := models.StrategyParameters{
				CurrentPrice: price,
				Expiry:       expiry,
				Contracts:    contracts,
			}
			if cmd.Flags().Changed("buy-strike") {
				params.BuyStrike = models.Float64Ptr(buyStrike)
			}
			if cmd.Flags().Changed("sell-strike") {
				params.SellStrike = models.Float64Ptr(sellStrike)
			}
			if cmd.Flags().Changed("premium-paid") {
				params.PremiumPaid = models.Float64Ptr(premiumPaid)
			}
			if cmd.Flags().Changed("premium-received") {
				params.PremiumReceived = models.Float64Ptr(premiumReceived)
			}

			for _, edit := range edits {
				field, value, err := parseEdit(edit)
				if err != nil {
					return err
				}
				params, err = engine.ApplyEdit(params, field, value)
				if err != nil {
					return err
				}
			}

			result, err := app.Engine.Recalculate(kind, params)
			if err != nil {
				return apperrors.Wrap(err, "computing strategy")
			}

			if output.IsJSON() {
				return output.JSON(result)
			}
			renderResult(output, app, kind, result)
			return nil
		},
	}

	computeCmd.Flags().Float64Var(&price, "price", 0, "current price of the underlying (required)")
	computeCmd.Flags().Float64Var(&buyStrike, "buy-strike", 0, "strike of the bought leg")
	computeCmd.Flags().Float64Var(&sellStrike, "sell-strike", 0, "strike of the written leg")
	computeCmd.Flags().Float64Var(&premiumPaid, "premium-paid", 0, "per-share premium paid")
	computeCmd.Flags().Float64Var(&premiumReceived, "premium-received", 0, "per-share premium received")
	computeCmd.Flags().IntVar(&contracts, "contracts", 1, "number of contracts")
	computeCmd.Flags().StringVar(&expiry, "expiry", "30d", "expiry label")
	computeCmd.Flags().StringArrayVar(&edits, "edit", nil, "field=value edit applied before computing (repeatable)")
	computeCmd.MarkFlagRequired("price")

	return computeCmd
}

// parseEdit splits a field=value argument.
func parseEdit(edit string) (string, float64, error) {
	field, raw, ok := strings.Cut(edit, "=")
	if !ok || field == "" {
		return "", 0, apperrors.NewInvalidParameterError("edit", edit, "expected field=value")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, apperrors.NewInvalidParameterError(field, raw, "not a number")
	}
	return field, value, nil
}

// renderResult prints the legs, risk metrics and payoff chart for a
// computed strategy.
func renderResult(output *Output, app *App, kind models.StrategyKind, result *engine.Result) {
	if info, ok := engine.Describe(kind); ok {
		output.Bold("%s  (%s)", info.Name, kind)
		output.Dim("%s", info.Description)
	} else {
		output.Bold("%s", kind)
	}
	output.Println()

	legTable := NewTable(output, "LEG", "TYPE", "SIDE", "STRIKE", "PREMIUM", "QTY")
	for i, leg := range result.Legs {
		legTable.AddRow(
			fmt.Sprintf("%d", i+1),
			string(leg.Type),
			string(leg.Side),
			FormatPrice(leg.Strike),
			FormatPrice(leg.Premium),
			fmt.Sprintf("%d", leg.Quantity),
		)
	}
	legTable.Render()
	output.Println()

	m := result.Metrics
	output.Printf("  Max gain:    %s\n", output.Green(FormatSignedAmount(m.MaxGain)))
	output.Printf("  Max loss:    %s\n", output.Red(FormatSignedAmount(m.MaxLoss)))
	output.Printf("  Breakeven:   %s\n", FormatPrice(m.Breakeven))
	output.Printf("  Probability: %s\n", m.Probability)

	// The grid is centered on the current price.
	at := result.Curve[len(result.Curve)/2]
	output.Printf("  At %s:  %s\n", FormatPrice(at.Price),
		output.ColoredString(output.PnLColor(at.Payoff), FormatSignedMoney(at.Payoff)))
	output.Println()

	for _, line := range BuildPayoffChart(result.Curve, app.Config.UI.ChartHeight, app.Config.UI.ChartWidth) {
		output.Println(line)
	}
}
