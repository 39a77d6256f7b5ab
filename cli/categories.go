package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sciencehub/hubctl/models"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse and manage categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Description)
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Client.GetCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\t%s\n", c.ID, c.Name, c.Description)
			return nil
		},
	}

	var createReq models.CreateCategoryRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a category (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			if err := app.checkInput(createReq); err != nil {
				return err
			}
			c, err := app.Client.CreateCategory(cmd.Context(), createReq)
			if err != nil {
				return err
			}
			fmt.Printf("created category %s (%s)\n", c.ID, c.Name)
			return nil
		},
	}
	create.Flags().StringVarP(&createReq.Name, "name", "n", "", "category name")
	create.Flags().StringVarP(&createReq.Description, "description", "d", "", "description")
	create.MarkFlagRequired("name")

	var updateReq models.UpdateCategoryRequest
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			c, err := app.Client.UpdateCategory(cmd.Context(), args[0], updateReq)
			if err != nil {
				return err
			}
			fmt.Printf("updated category %s\n", c.ID)
			return nil
		},
	}
	update.Flags().StringVarP(&updateReq.Name, "name", "n", "", "category name")
	update.Flags().StringVarP(&updateReq.Description, "description", "d", "", "description")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			if err := app.Client.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}

	cmd.AddCommand(list, show, create, update, del)
	return cmd
}
