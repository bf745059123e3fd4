package cli

import (
	"github.com/spf13/cobra"

	"option-strategist/internal/engine"
	"option-strategist/internal/models"
)

func newStrategiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the supported strategy kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.UI.ColorEnabled)

			if output.IsJSON() {
				type entry struct {
					Kind        models.StrategyKind `json:"kind"`
					Name        string              `json:"name"`
					Description string              `json:"description"`
					RiskLevel   string              `json:"risk_level"`
				}
				entries := make([]entry, 0, len(models.StrategyKinds))
				for _, kind := range models.StrategyKinds {
					info, _ := engine.Describe(kind)
					entries = append(entries, entry{
						Kind:        kind,
						Name:        info.Name,
						Description: info.Description,
						RiskLevel:   info.RiskLevel,
					})
				}
				return output.JSON(entries)
			}

			table := NewTable(output, "STRATEGY", "NAME", "RISK", "DESCRIPTION")
			for _, kind := range models.StrategyKinds {
				info, _ := engine.Describe(kind)
				table.AddRow(string(kind), info.Name, info.RiskLevel, info.Description)
			}
			table.Render()
			return nil
		},
	}
}
