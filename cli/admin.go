package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sciencehub/hubctl/models"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Back-office: users and site statistics",
	}
	cmd.AddCommand(
		newAdminUsersCmd(app),
		newAdminSetRoleCmd(app),
		newAdminToggleActiveCmd(app),
		newAdminStatsCmd(app),
	)
	return cmd
}

func newAdminUsersCmd(app *App) *cobra.Command {
	var filters models.UserFilters
	var activeFlag string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			switch activeFlag {
			case "true":
				v := true
				filters.IsActive = &v
			case "false":
				v := false
				filters.IsActive = &v
			case "":
			default:
				return fmt.Errorf("--active must be true or false")
			}
			if err := app.checkInput(filters); err != nil {
				return err
			}
			page, err := app.Client.ListUsers(cmd.Context(), filters)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tACTIVE\tCONFIRMED")
			for _, u := range page.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%t\n",
					u.ID, u.Email, u.FullName, u.Role, u.IsActive, u.IsEmailConfirmed)
			}
			w.Flush()
			fmt.Printf("page %d/%d, %d users total\n", page.Page, page.TotalPages, page.TotalCount)
			return nil
		},
	}
	cmd.Flags().IntVar(&filters.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&filters.PageSize, "page-size", 0, "users per page")
	cmd.Flags().StringVarP(&filters.Search, "search", "s", "", "search term")
	cmd.Flags().StringVar(&filters.Role, "role", "", "User, Admin or SuperAdmin")
	cmd.Flags().StringVar(&activeFlag, "active", "", "filter by active state (true/false)")
	return cmd
}

func newAdminSetRoleCmd(app *App) *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "set-role <user-id>",
		Short: "Change an account's role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			valid := false
			for _, r := range models.ValidRoles {
				if role == r {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("role must be one of %v", models.ValidRoles)
			}
			if err := app.Client.UpdateUserRole(cmd.Context(), args[0], role); err != nil {
				return err
			}
			fmt.Printf("user %s is now %s\n", args[0], role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&role, "role", "r", "", "new role")
	cmd.MarkFlagRequired("role")
	return cmd
}

func newAdminToggleActiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-active <user-id>",
		Short: "Activate or deactivate an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			if err := app.Client.ToggleUserActive(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("toggled")
			return nil
		},
	}
}

func newAdminStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show site statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			stats, err := app.Client.Statistics(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("books: %d\nusers: %d (%d active)\ndownloads: %d\n",
				stats.TotalBooks, stats.TotalUsers, stats.ActiveUsers, stats.TotalDownloads)
			if len(stats.TopBooks) > 0 {
				fmt.Println("\ntop books:")
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				for _, b := range stats.TopBooks {
					fmt.Fprintf(w, "  %s\t%s\t%d downloads\n", b.Title, b.Author, b.DownloadCount)
				}
				w.Flush()
			}
			if len(stats.CategoryStats) > 0 {
				fmt.Println("\nby category:")
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				for _, c := range stats.CategoryStats {
					fmt.Fprintf(w, "  %s\t%d books\n", c.CategoryName, c.BookCount)
				}
				w.Flush()
			}
			return nil
		},
	}
}
