package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sciencehub/hubctl/models"
)

func newAboutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Site about-us content",
	}
	cmd.AddCommand(newAboutShowCmd(app), newAboutUpdateCmd(app))
	return cmd
}

func newAboutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show about-us content",
		RunE: func(cmd *cobra.Command, args []string) error {
			about, err := app.Client.AboutUs(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n\n%s\n", about.Title, about.Content)
			if about.Mission != "" {
				fmt.Printf("\nmission: %s\n", about.Mission)
			}
			if about.Vision != "" {
				fmt.Printf("vision: %s\n", about.Vision)
			}
			if about.ContactEmail != "" {
				fmt.Printf("contact: %s\n", about.ContactEmail)
			}
			return nil
		},
	}
}

func newAboutUpdateCmd(app *App) *cobra.Command {
	var req models.UpdateAboutRequest
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update about-us content",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			if err := app.checkInput(req); err != nil {
				return err
			}
			about, err := app.Client.UpdateAboutUs(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("updated %q\n", about.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "page title")
	cmd.Flags().StringVar(&req.Content, "content", "", "main content")
	cmd.Flags().StringVar(&req.Mission, "mission", "", "mission statement")
	cmd.Flags().StringVar(&req.Vision, "vision", "", "vision statement")
	cmd.Flags().StringVar(&req.ContactEmail, "contact-email", "", "contact email")
	return cmd
}
