package cli

import (
	"github.com/spf13/cobra"

	"option-strategist/internal/engine"
	apperrors "option-strategist/internal/errors"
	"option-strategist/internal/models"
)

func newSuggestCmd(app *App) *cobra.Command {
	var (
		direction string
		strength  string
		risk      string
		timeframe string
		price     float64
	)

	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a strategy for a market outlook",
		Long: `Suggest maps a market outlook to a strategy kind, fills its
parameters from the current price, and computes the resulting payoff
and risk metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)

			outlook := engine.Outlook{
				Direction:   direction,
				Strength:    strength,
				RiskProfile: risk,
				Timeframe:   timeframe,
			}
			rec, err := engine.Recommend(outlook, price, app.Config.Presets)
			if err != nil {
				return apperrors.Wrap(err, "building recommendation")
			}

			result, err := app.Engine.Recalculate(rec.Kind, rec.Parameters)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				strategy := models.Strategy{
					Kind:       rec.Kind,
					Parameters: rec.Parameters,
					Legs:       result.Legs,
				}
				return output.JSON(struct {
					Recommendation engine.Recommendation `json:"recommendation"`
					Strategy       models.Strategy       `json:"strategy"`
					Result         *engine.Result        `json:"result"`
				}{rec, strategy, result})
			}

			output.Info("Suggested for %s/%s outlook, %s risk, %s horizon:", direction, strength, risk, timeframe)
			output.Println()
			renderResult(output, app, rec.Kind, result)
			return nil
		},
	}

	suggestCmd.Flags().StringVar(&direction, "direction", "bullish", "market direction: bullish, bearish or neutral")
	suggestCmd.Flags().StringVar(&strength, "strength", "moderate", "conviction: strong or moderate")
	suggestCmd.Flags().StringVar(&risk, "risk", "balanced", "risk profile: aggressive, balanced or conservative")
	suggestCmd.Flags().StringVar(&timeframe, "timeframe", "short", "horizon: short, medium or long")
	suggestCmd.Flags().Float64Var(&price, "price", 0, "current price of the underlying (required)")
	suggestCmd.MarkFlagRequired("price")

	return suggestCmd
}
