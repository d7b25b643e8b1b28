package cli

import (
	"context"

	"github.com/spf13/cobra"

	"porra/internal/repository"
	"porra/internal/validation"
)

func (a *App) leaguesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leagues",
		Aliases: []string{"ligas"},
		Short:   "Create, join and manage leagues",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your leagues",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			leagues, err := a.leagues.List(ctx)
			if err != nil {
				return err
			}
			renderLeagues(a.out, leagues)
			return nil
		}),
	}

	show := &cobra.Command{
		Use:   "show <league>",
		Short: "Show a league",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			league, err := a.leagues.Get(ctx, args[0])
			if err != nil {
				return err
			}
			renderLeague(a.out, league)
			return nil
		}),
	}

	var form validation.LeagueForm
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a league",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			league, err := a.leagues.Create(ctx, form)
			if err != nil {
				return err
			}
			a.printf("Liga creada. Comparte el código %s para invitar a otros.\n", league.Code)
			renderLeague(a.out, league)
			return nil
		}),
	}
	create.Flags().StringVar(&form.Name, "name", "", "league name")
	create.Flags().StringVar(&form.Description, "description", "", "league description")
	create.Flags().BoolVar(&form.IsPrivate, "private", false, "hide the league from public listings")

	var name, description string
	var private bool
	update := &cobra.Command{
		Use:   "update <league>",
		Short: "Change a league you own",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			var u repository.LeagueUpdate
			if cmd.Flags().Changed("name") {
				u.Name = &name
			}
			if cmd.Flags().Changed("description") {
				u.Description = &description
			}
			if cmd.Flags().Changed("private") {
				u.IsPrivate = &private
			}
			league, err := a.leagues.Update(ctx, args[0], u)
			if err != nil {
				return err
			}
			renderLeague(a.out, league)
			return nil
		}),
	}
	update.Flags().StringVar(&name, "name", "", "new name")
	update.Flags().StringVar(&description, "description", "", "new description")
	update.Flags().BoolVar(&private, "private", false, "make the league private")

	del := &cobra.Command{
		Use:   "delete <league>",
		Short: "Delete a league you own",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if err := a.leagues.Delete(ctx, args[0]); err != nil {
				return err
			}
			a.println("Liga eliminada.")
			return nil
		}),
	}

	join := &cobra.Command{
		Use:   "join <code>",
		Short: "Join a league with its invite code",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			league, err := a.leagues.Join(ctx, args[0])
			if err != nil {
				return err
			}
			a.printf("Te has unido a %s.\n", league.Name)
			return nil
		}),
	}

	leave := &cobra.Command{
		Use:   "leave <league>",
		Short: "Leave a league",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if err := a.leagues.Leave(ctx, args[0]); err != nil {
				return err
			}
			a.println("Has abandonado la liga.")
			return nil
		}),
	}

	members := &cobra.Command{
		Use:   "members <league>",
		Short: "List league members",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			list, err := a.leagues.Members(ctx, args[0])
			if err != nil {
				return err
			}
			renderMembers(a.out, list)
			return nil
		}),
	}

	kick := &cobra.Command{
		Use:   "kick <league> <user>",
		Short: "Remove a member from a league you own",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if err := a.leagues.Kick(ctx, args[0], args[1]); err != nil {
				return err
			}
			a.println("Miembro expulsado.")
			return nil
		}),
	}

	var page int
	ranking := &cobra.Command{
		Use:   "ranking <league>",
		Short: "Show the league ranking",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			res, err := a.leagues.Ranking(ctx, args[0], page)
			if err != nil {
				return err
			}
			renderRanking(a.out, res)
			return nil
		}),
	}
	ranking.Flags().IntVar(&page, "page", 1, "page number")

	cmd.AddCommand(list, show, create, update, del, join, leave, members, kick, ranking)
	return cmd
}
