package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sciencehub/hubctl/models"
)

func newAudiencesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audiences",
		Short: "Browse and manage target audiences",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all audiences",
		RunE: func(cmd *cobra.Command, args []string) error {
			audiences, err := app.Client.ListAudiences(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, a := range audiences {
				fmt.Fprintf(w, "%s\t%s\n", a.ID, a.Name)
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one audience",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Client.GetAudience(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", a.ID, a.Name)
			return nil
		},
	}

	var createReq models.CreateAudienceRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an audience (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			if err := app.checkInput(createReq); err != nil {
				return err
			}
			a, err := app.Client.CreateAudience(cmd.Context(), createReq)
			if err != nil {
				return err
			}
			fmt.Printf("created audience %s (%s)\n", a.ID, a.Name)
			return nil
		},
	}
	create.Flags().StringVarP(&createReq.Name, "name", "n", "", "audience name")
	create.MarkFlagRequired("name")

	var updateReq models.UpdateAudienceRequest
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an audience (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			a, err := app.Client.UpdateAudience(cmd.Context(), args[0], updateReq)
			if err != nil {
				return err
			}
			fmt.Printf("updated audience %s\n", a.ID)
			return nil
		},
	}
	update.Flags().StringVarP(&updateReq.Name, "name", "n", "", "audience name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an audience (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			if err := app.Client.DeleteAudience(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}

	cmd.AddCommand(list, show, create, update, del)
	return cmd
}
