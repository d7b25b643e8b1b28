package cli

import (
	"context"

	"github.com/spf13/cobra"

	"porra/internal/domain"
	"porra/internal/repository"
	"porra/internal/service"
)

func (a *App) predictionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "predictions",
		Aliases: []string{"porra"},
		Short:   "Read and submit your predictions for a league",
		Long: `Read and submit your predictions for a league.

Match predictions are written as match=H-A. Knockout matches that end level
need extra time and, if still level, a penalty winner:

  porra predictions knockout <league> QUARTER_FINAL m97=1-1,et=2-2,pen=home m98=2-0`,
	}

	show := &cobra.Command{
		Use:   "show <league>",
		Short: "Show your prediction",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			p, err := a.predictions.Get(ctx, args[0])
			if err != nil {
				return err
			}
			renderPrediction(a.out, p)
			return nil
		}),
	}

	stats := &cobra.Command{
		Use:   "stats <league>",
		Short: "Show how much of your prediction is filled in",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			s, err := a.predictions.Stats(ctx, args[0])
			if err != nil {
				return err
			}
			renderStats(a.out, s)
			return nil
		}),
	}

	var tiebreaks []string
	group := &cobra.Command{
		Use:   "group <league> <group> <match=H-A>...",
		Short: "Submit group stage predictions",
		Args:  cobra.MinimumNArgs(3),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			preds, err := parsePredictions(args[2:])
			if err != nil {
				return err
			}
			ranks, err := parseTiebreaks(tiebreaks)
			if err != nil {
				return err
			}
			res, err := a.predictions.SaveGroup(ctx, args[0], args[1], preds, ranks)
			if err != nil {
				return err
			}
			a.printf("%d pronósticos guardados.\n", len(preds))
			renderStandings(a.out, &res.Table)
			return nil
		}),
	}
	group.Flags().StringArrayVar(&tiebreaks, "tiebreak", nil, "manual rank for tied teams, team=rank (repeatable)")

	knockout := &cobra.Command{
		Use:   "knockout <league> <phase> <match=H-A[,et=H-A][,pen=home|away]>...",
		Short: "Submit knockout predictions for one phase",
		Args:  cobra.MinimumNArgs(3),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			phase, err := parseKnockoutPhase(args[1])
			if err != nil {
				return err
			}
			preds, err := parsePredictions(args[2:])
			if err != nil {
				return err
			}
			p, err := a.predictions.SaveKnockout(ctx, args[0], phase, preds)
			if err != nil {
				return err
			}
			a.printf("%d pronósticos de %s guardados.\n", len(preds), phase)
			renderWinners(a, p, preds)
			return nil
		}),
	}

	var awards domain.Awards
	awardsCmd := &cobra.Command{
		Use:   "awards <league>",
		Short: "Pick the individual award winners",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			p, err := a.predictions.SaveAwards(ctx, args[0], awards)
			if err != nil {
				return err
			}
			a.println("Premios guardados.")
			renderPrediction(a.out, p)
			return nil
		}),
	}
	awardsCmd.Flags().StringVar(&awards.GoldenBall, "golden-ball", "", "player id")
	awardsCmd.Flags().StringVar(&awards.GoldenBoot, "golden-boot", "", "player id")
	awardsCmd.Flags().StringVar(&awards.GoldenGlove, "golden-glove", "", "player id")
	awardsCmd.Flags().StringVar(&awards.BestYoungPlayer, "best-young-player", "", "player id")

	champion := &cobra.Command{
		Use:   "champion <league> <team>",
		Short: "Pick the tournament winner",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if _, err := a.predictions.SaveChampion(ctx, args[0], args[1]); err != nil {
				return err
			}
			a.printf("Campeón guardado: %s\n", args[1])
			return nil
		}),
	}

	cmd.AddCommand(show, stats, group, knockout, awardsCmd, champion)
	return cmd
}

// renderWinners reads the saved copy back since the submitted predictions
// carry no team ids.
func renderWinners(a *App, saved *domain.Prediction, preds []domain.MatchPrediction) {
	for _, p := range preds {
		mp, ok := saved.MatchPrediction(p.MatchID)
		if !ok {
			continue
		}
		if winner, ok := mp.Winner(); ok {
			a.printf("  %s: pasa %s\n", p.MatchID, winner)
		}
	}
}

func (a *App) draftCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "draft",
		Aliases: []string{"borrador"},
		Short:   "Keep predictions locally and submit them later",
	}

	set := &cobra.Command{
		Use:   "set <league> <match=H-A[,et=H-A][,pen=home|away]>...",
		Short: "Save match predictions as drafts",
		Args:  cobra.MinimumNArgs(2),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			preds, err := parsePredictions(args[1:])
			if err != nil {
				return err
			}
			for _, p := range preds {
				d, err := a.predictions.SetDraft(ctx, args[0], p)
				if err != nil {
					return err
				}
				a.printf("Borrador guardado: %s %s\n", d.Prediction.MatchID, predictionText(d.Prediction))
			}
			return nil
		}),
	}

	show := &cobra.Command{
		Use:   "show <league>",
		Short: "List drafts",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			drafts, err := a.predictions.Drafts(ctx, args[0])
			if err != nil {
				return err
			}
			renderDrafts(a.out, drafts)
			return nil
		}),
	}

	var scope service.DraftScope
	var phase string
	clearCmd := &cobra.Command{
		Use:   "clear <league>",
		Short: "Drop drafts",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if phase != "" {
				p, err := parsePhase(phase)
				if err != nil {
					return err
				}
				scope.Phase = p
			}
			n, err := a.predictions.ClearDrafts(ctx, args[0], scope)
			if err != nil {
				return err
			}
			a.printf("%d borradores eliminados.\n", n)
			return nil
		}),
	}
	clearCmd.Flags().StringVar(&scope.MatchID, "match", "", "only this match")
	clearCmd.Flags().StringVar(&scope.GroupID, "group", "", "only this group")
	clearCmd.Flags().StringVar(&phase, "phase", "", "only this phase")
	clearCmd.MarkFlagsMutuallyExclusive("match", "group", "phase")

	var tiebreaks []string
	preview := &cobra.Command{
		Use:   "standings <league> <group>",
		Short: "Preview a group table with drafts applied",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			ranks, err := parseTiebreaks(tiebreaks)
			if err != nil {
				return err
			}
			table, err := a.predictions.DraftStandings(ctx, args[0], args[1], ranks)
			if err != nil {
				return err
			}
			renderStandings(a.out, table)
			return nil
		}),
	}
	preview.Flags().StringArrayVar(&tiebreaks, "tiebreak", nil, "manual rank for tied teams, team=rank (repeatable)")

	submitGroup := &cobra.Command{
		Use:   "submit-group <league> <group>",
		Short: "Submit a group's drafts",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			ranks, err := parseTiebreaks(tiebreaks)
			if err != nil {
				return err
			}
			res, err := a.predictions.SubmitGroupDrafts(ctx, args[0], args[1], ranks)
			if err != nil {
				return err
			}
			a.printf("Grupo %s enviado.\n", args[1])
			renderStandings(a.out, &res.Table)
			return nil
		}),
	}
	submitGroup.Flags().StringArrayVar(&tiebreaks, "tiebreak", nil, "manual rank for tied teams, team=rank (repeatable)")

	submitKnockout := &cobra.Command{
		Use:   "submit-knockout <league> <phase>",
		Short: "Submit a knockout phase's drafts as one batch",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			p, err := parseKnockoutPhase(args[1])
			if err != nil {
				return err
			}
			if _, err := a.predictions.SubmitKnockoutDrafts(ctx, args[0], p); err != nil {
				return err
			}
			a.printf("Fase %s enviada.\n", p)
			return nil
		}),
	}

	cmd.AddCommand(set, show, clearCmd, preview, submitGroup, submitKnockout)
	return cmd
}

func (a *App) standingsCommand() *cobra.Command {
	var tiebreaks []string
	cmd := &cobra.Command{
		Use:     "standings <league> <group>",
		Aliases: []string{"clasificacion"},
		Short:   "Group table built from your saved predictions",
		Args:    cobra.ExactArgs(2),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			ranks, err := parseTiebreaks(tiebreaks)
			if err != nil {
				return err
			}
			table, err := a.predictions.GroupStandings(ctx, args[0], args[1], ranks)
			if err != nil {
				return err
			}
			renderStandings(a.out, table)
			return nil
		}),
	}
	cmd.Flags().StringArrayVar(&tiebreaks, "tiebreak", nil, "manual rank for tied teams, team=rank (repeatable)")
	return cmd
}

func (a *App) scheduleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"calendario"},
		Short:   "Fixtures, results and stadiums",
	}

	var phase, group string
	matches := &cobra.Command{
		Use:   "matches",
		Short: "List matches",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			f := repository.MatchFilter{GroupID: group}
			if phase != "" {
				p, err := parsePhase(phase)
				if err != nil {
					return err
				}
				f.Phase = p
			}
			list, err := a.schedule.Matches(ctx, f)
			if err != nil {
				return err
			}
			renderMatches(a.out, list)
			return nil
		}),
	}
	matches.Flags().StringVar(&phase, "phase", "", "only this phase")
	matches.Flags().StringVar(&group, "group", "", "only this group")

	calendar := &cobra.Command{
		Use:   "calendar",
		Short: "Matches grouped by day",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			days, err := a.schedule.Calendar(ctx)
			if err != nil {
				return err
			}
			renderCalendar(a.out, days)
			return nil
		}),
	}

	match := &cobra.Command{
		Use:   "match <id>",
		Short: "Show one match",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			m, err := a.schedule.Match(ctx, args[0])
			if err != nil {
				return err
			}
			renderMatches(a.out, []domain.Match{*m})
			return nil
		}),
	}

	stadiums := &cobra.Command{
		Use:   "stadiums",
		Short: "List stadiums",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			list, err := a.schedule.Stadiums(ctx)
			if err != nil {
				return err
			}
			renderStadiums(a.out, list)
			return nil
		}),
	}

	stadium := &cobra.Command{
		Use:   "stadium <id>",
		Short: "Show one stadium",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			s, err := a.schedule.Stadium(ctx, args[0])
			if err != nil {
				return err
			}
			renderStadiums(a.out, []domain.Stadium{*s})
			return nil
		}),
	}

	cmd.AddCommand(matches, calendar, match, stadiums, stadium)
	return cmd
}

func (a *App) teamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"selecciones"},
		Short:   "National teams and squads",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List teams by group",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			teams, err := a.teams.List(ctx)
			if err != nil {
				return err
			}
			renderTeams(a.out, teams)
			return nil
		}),
	}

	show := &cobra.Command{
		Use:   "show <team>",
		Short: "Show a team",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			t, err := a.teams.Get(ctx, args[0])
			if err != nil {
				return err
			}
			renderTeams(a.out, []domain.Team{*t})
			return nil
		}),
	}

	players := &cobra.Command{
		Use:   "players <team>",
		Short: "List a team's squad",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			list, err := a.teams.Players(ctx, args[0])
			if err != nil {
				return err
			}
			renderPlayers(a.out, list)
			return nil
		}),
	}

	cmd.AddCommand(list, show, players)
	return cmd
}

func (a *App) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"inicio"},
		Short:   "Your leagues, progress and next matches",
		Args:    cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			d, err := a.dashboard.Load(ctx)
			if err != nil {
				return err
			}
			renderDashboard(a.out, d)
			return nil
		}),
	}
}
