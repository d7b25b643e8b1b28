package cli

import (
	"context"

	"github.com/spf13/cobra"

	"porra/internal/validation"
)

func (a *App) authCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign up and manage the session",
	}

	var email, password, name, confirm string

	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session locally",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			user, err := a.auth.Login(ctx, validation.LoginForm{Email: email, Password: password})
			if err != nil {
				return err
			}
			a.printf("Sesión iniciada como %s (%s)\n", user.Name, user.Email)
			return nil
		}),
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password")

	register := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			msg, err := a.auth.Register(ctx, validation.RegisterForm{Name: name, Email: email, Password: password, Confirm: confirm})
			if err != nil {
				return err
			}
			a.println(orDefault(msg, "Cuenta creada. Revisa tu email para verificarla."))
			return nil
		}),
	}
	register.Flags().StringVar(&name, "name", "", "display name")
	register.Flags().StringVar(&email, "email", "", "account email")
	register.Flags().StringVar(&password, "password", "", "password")
	register.Flags().StringVar(&confirm, "confirm", "", "password again")

	verify := &cobra.Command{
		Use:   "verify <token>",
		Short: "Verify the account email",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			msg, err := a.auth.VerifyEmail(ctx, args[0])
			if err != nil {
				return err
			}
			a.println(orDefault(msg, "Email verificado. Ya puedes iniciar sesión."))
			return nil
		}),
	}

	forgot := &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Send a password reset email",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			msg, err := a.auth.ForgotPassword(ctx, args[0])
			if err != nil {
				return err
			}
			a.println(orDefault(msg, "Si el email existe, recibirás un enlace para restablecer la contraseña."))
			return nil
		}),
	}

	reset := &cobra.Command{
		Use:   "reset-password <token>",
		Short: "Set a new password with a reset token",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			msg, err := a.auth.ResetPassword(ctx, validation.ResetPasswordForm{Token: args[0], Password: password, Confirm: confirm})
			if err != nil {
				return err
			}
			a.println(orDefault(msg, "Contraseña actualizada."))
			return nil
		}),
	}
	reset.Flags().StringVar(&password, "password", "", "new password")
	reset.Flags().StringVar(&confirm, "confirm", "", "new password again")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Close the session",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if err := a.auth.Logout(ctx); err != nil {
				return err
			}
			a.println("Sesión cerrada.")
			return nil
		}),
	}

	var remote bool
	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show who the stored session belongs to",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if remote {
				user, err := a.auth.Me(ctx)
				if err != nil {
					return err
				}
				a.printf("%s <%s>\nID: %s\nVerificado: %s\n", user.Name, user.Email, user.ID, yesNo(user.Verified))
				return nil
			}

			id, err := a.auth.WhoAmI(ctx)
			if err != nil {
				return err
			}
			a.printf("ID: %s\n", id.UserID)
			if id.Email != "" {
				a.printf("Email: %s\n", id.Email)
			}
			if !id.ExpiresAt.IsZero() {
				state := "vigente"
				if id.Expired {
					state = "caducado, se renovará en la próxima petición"
				}
				a.printf("Token: %s (expira %s)\n", state, id.ExpiresAt.Local().Format("02/01/2006 15:04"))
			}
			return nil
		}),
	}
	whoami.Flags().BoolVar(&remote, "remote", false, "ask the backend instead of reading the local token")

	cmd.AddCommand(login, register, verify, forgot, reset, logout, whoami)
	return cmd
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
