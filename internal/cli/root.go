package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "porra",
		Short: "Porra del Mundial desde la terminal",
		Long: `porra is a client for the World Cup prediction pool.

Sign in, join leagues, fill in your group and knockout predictions and
follow the ranking. Predictions can be kept as local drafts and submitted
later, group by group or phase by phase.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		a.authCommand(),
		a.leaguesCommand(),
		a.predictionsCommand(),
		a.draftCommand(),
		a.standingsCommand(),
		a.scheduleCommand(),
		a.teamsCommand(),
		a.dashboardCommand(),
	)
	return root
}
