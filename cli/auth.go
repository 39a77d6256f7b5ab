package cli

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sciencehub/hubctl/models"
)

// promptPassword reads a password without echo when stdin is a terminal.
func promptPassword(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	data, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = promptPassword("Password"); err != nil {
					return err
				}
			}
			req := models.LoginRequest{Email: email, Password: password}
			if err := app.checkInput(req); err != nil {
				return err
			}
			if err := app.Session.Login(cmd.Context(), req); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			user, _ := app.Session.User()
			fmt.Printf("logged in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout(cmd.Context())
			fmt.Println("logged out")
			return nil
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	var req models.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				var err error
				if req.Password, err = promptPassword("Password"); err != nil {
					return err
				}
				if req.ConfirmPassword, err = promptPassword("Confirm password"); err != nil {
					return err
				}
			} else if req.ConfirmPassword == "" {
				req.ConfirmPassword = req.Password
			}
			if err := app.checkInput(req); err != nil {
				return err
			}
			if err := app.Client.Register(cmd.Context(), req); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			fmt.Println("registered; check your email for a verification code")
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.FullName, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "password (prompted when omitted)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newVerifyEmailCmd(app *App) *cobra.Command {
	var req models.VerifyEmailRequest
	cmd := &cobra.Command{
		Use:   "verify-email",
		Short: "Confirm an email address with the emailed code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.checkInput(req); err != nil {
				return err
			}
			if err := app.Client.VerifyEmail(cmd.Context(), req); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}
			fmt.Println("email verified")
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Code, "code", "c", "", "verification code")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("code")
	return cmd
}

func newResendCodeCmd(app *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "resend-code",
		Short: "Resend the email verification code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.ResendVerificationCode(cmd.Context(), email); err != nil {
				return fmt.Errorf("resend failed: %w", err)
			}
			fmt.Println("verification code sent")
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newForgotPasswordCmd(app *App) *cobra.Command {
	var req models.ForgotPasswordRequest
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.checkInput(req); err != nil {
				return err
			}
			if err := app.Client.ForgotPassword(cmd.Context(), req); err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			fmt.Println("reset code sent if the account exists")
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newResetPasswordCmd(app *App) *cobra.Command {
	var req models.ResetPasswordRequest
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using the emailed reset code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.NewPassword == "" {
				var err error
				if req.NewPassword, err = promptPassword("New password"); err != nil {
					return err
				}
				if req.ConfirmPassword, err = promptPassword("Confirm password"); err != nil {
					return err
				}
			} else if req.ConfirmPassword == "" {
				req.ConfirmPassword = req.NewPassword
			}
			if err := app.checkInput(req); err != nil {
				return err
			}
			if err := app.Client.ResetPassword(cmd.Context(), req); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}
			fmt.Println("password reset; log in with the new password")
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Code, "code", "c", "", "reset code")
	cmd.Flags().StringVarP(&req.NewPassword, "password", "p", "", "new password (prompted when omitted)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("code")
	return cmd
}

func newChangePasswordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the current account's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(); err != nil {
				return err
			}
			current, err := promptPassword("Current password")
			if err != nil {
				return err
			}
			newPass, err := promptPassword("New password")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password")
			if err != nil {
				return err
			}
			req := models.ChangePasswordRequest{CurrentPassword: current, NewPassword: newPass, ConfirmPassword: confirm}
			if err := app.checkInput(req); err != nil {
				return err
			}
			if err := app.Client.ChangePassword(cmd.Context(), req); err != nil {
				return fmt.Errorf("change failed: %w", err)
			}
			fmt.Println("password changed")
			return nil
		},
	}
	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(); err != nil {
				return err
			}
			user, _ := app.Session.User()
			if remote {
				fetched, err := app.Client.CurrentUser(cmd.Context())
				if err != nil {
					return err
				}
				user = fetched
				app.Session.SetUser(user)
			}
			fmt.Printf("%s <%s> role=%s active=%t\n", user.FullName, user.Email, user.Role, user.IsActive)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "refresh", false, "re-fetch the account from the backend")
	return cmd
}
