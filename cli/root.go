// Package cli implements the hubctl commands. Every command goes through
// the shared App wiring: config from env, file-backed token storage, the
// API client and the session store.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sciencehub/hubctl/api"
	"github.com/sciencehub/hubctl/config"
	"github.com/sciencehub/hubctl/session"
	"github.com/sciencehub/hubctl/tokens"
)

type App struct {
	Cfg     *config.Config
	Client  *api.Client
	Session *session.Store
	Log     *logrus.Logger

	validate *validator.Validate
}

// NewRootCmd wires the application and registers all subcommands.
func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "hubctl",
		Short:         "Command-line client for the ScienceHub digital-book library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newVerifyEmailCmd(app),
		newResendCodeCmd(app),
		newForgotPasswordCmd(app),
		newResetPasswordCmd(app),
		newChangePasswordCmd(app),
		newWhoamiCmd(app),
		newBooksCmd(app),
		newCategoriesCmd(app),
		newAudiencesCmd(app),
		newAdminCmd(app),
		newAboutCmd(app),
	)

	return root
}

func (a *App) init() error {
	if a.Cfg != nil {
		return nil
	}
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.Cfg = cfg

	a.Log = logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		a.Log.SetLevel(level)
	}

	storage, err := tokens.NewFileStore(cfg.StateDir, cfg.EncryptionKey)
	if err != nil {
		return fmt.Errorf("state dir: %w", err)
	}

	a.Client = api.New(cfg, storage, api.WithLogger(a.Log))
	a.Session = session.New(storage, a.Client, a.Log)
	a.Session.Initialize()

	a.validate = validator.New()
	return nil
}

// checkInput validates a request struct locally; nothing is sent when it
// fails. Field errors come back one per line.
func (a *App) checkInput(v any) error {
	err := a.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, fmt.Sprintf("%s: failed %q check", fe.Field(), fe.Tag()))
	}
	return errors.New("invalid input:\n  " + strings.Join(lines, "\n  "))
}

// requireAuth guards commands that need a session.
func (a *App) requireAuth() error {
	if !a.Session.IsAuthenticated() {
		return errors.New("not logged in (run: hubctl login)")
	}
	return nil
}

// requireAdmin guards the back-office commands.
func (a *App) requireAdmin() error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if !a.Session.IsAdmin() {
		return errors.New("admin role required")
	}
	return nil
}
