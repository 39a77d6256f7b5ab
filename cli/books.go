package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sciencehub/hubctl/models"
)

func newBooksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse and manage the catalog",
	}
	cmd.AddCommand(
		newBooksListCmd(app),
		newBooksShowCmd(app),
		newBooksDownloadCmd(app),
		newBooksCreateCmd(app),
		newBooksUpdateCmd(app),
		newBooksDeleteCmd(app),
	)
	return cmd
}

func newBooksListCmd(app *App) *cobra.Command {
	var filters models.BookFilters
	var categoryOnly string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.checkInput(filters); err != nil {
				return err
			}
			if filters.PageSize == 0 {
				filters.PageSize = app.Cfg.DefaultPageSize
			}

			if categoryOnly != "" {
				books, err := app.Client.BooksByCategory(cmd.Context(), categoryOnly)
				if err != nil {
					return err
				}
				printBooks(books)
				return nil
			}

			page, err := app.Client.ListBooks(cmd.Context(), filters)
			if err != nil {
				return err
			}
			printBooks(page.Items)
			fmt.Printf("page %d/%d, %d books total\n", page.Page, page.TotalPages, page.TotalCount)
			return nil
		},
	}
	cmd.Flags().IntVar(&filters.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&filters.PageSize, "page-size", 0, "books per page")
	cmd.Flags().StringVarP(&filters.Search, "search", "s", "", "search term")
	cmd.Flags().StringVar(&filters.CategoryID, "category", "", "filter by category id")
	cmd.Flags().StringVar(&filters.AudienceID, "audience", "", "filter by audience id")
	cmd.Flags().StringVar(&filters.Difficulty, "difficulty", "", "Beginner, Intermediate or Advanced")
	cmd.Flags().StringVar(&filters.Language, "language", "", "filter by language")
	cmd.Flags().StringVar(&filters.SortBy, "sort", "", "sort field")
	cmd.Flags().StringVar(&filters.SortOrder, "order", "", "asc or desc")
	cmd.Flags().StringVar(&categoryOnly, "by-category", "", "list the full category instead of a paginated search")
	return cmd
}

func printBooks(books []models.Book) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tDIFFICULTY\tLANG\tDOWNLOADS\tRATING")
	for _, b := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%.1f\n",
			b.ID, b.Title, b.Author, b.Difficulty, b.Language, b.DownloadCount, b.Rating)
	}
	w.Flush()
}

func newBooksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := app.Client.GetBook(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s by %s\n", book.Title, book.Author)
			fmt.Printf("  id:         %s\n", book.ID)
			fmt.Printf("  difficulty: %s\n", book.Difficulty)
			fmt.Printf("  language:   %s\n", book.Language)
			if book.Category != nil {
				fmt.Printf("  category:   %s\n", book.Category.Name)
			} else if book.CategoryID != "" {
				fmt.Printf("  category:   %s\n", book.CategoryID)
			}
			if book.Audience != nil {
				fmt.Printf("  audience:   %s\n", book.Audience.Name)
			} else if book.AudienceID != "" {
				fmt.Printf("  audience:   %s\n", book.AudienceID)
			}
			if book.PageCount != nil {
				fmt.Printf("  pages:      %d\n", *book.PageCount)
			}
			fmt.Printf("  size:       %s\n", humanSize(book.FileSize))
			fmt.Printf("  downloads:  %d\n", book.DownloadCount)
			fmt.Printf("  rating:     %.1f\n", book.Rating)
			for _, img := range book.Images {
				fmt.Printf("  cover:      %s\n", img.ImageURL)
			}
			if book.Description != "" {
				fmt.Printf("\n%s\n", book.Description)
			}
			return nil
		},
	}
}

func newBooksDownloadCmd(app *App) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a book's PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, name, err := app.Client.Download(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer body.Close()

			if output == "" {
				output = name
			}
			if output == "" {
				output = args[0] + ".pdf"
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			n, err := io.Copy(f, body)
			if err != nil {
				return err
			}
			fmt.Printf("saved %s (%s)\n", output, humanSize(n))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to the server-provided name)")
	return cmd
}

func newBooksCreateCmd(app *App) *cobra.Command {
	var req models.CreateBookRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a book (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			if err := app.checkInput(req); err != nil {
				return err
			}
			book, err := app.Client.CreateBook(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("created book %s (%s)\n", book.ID, book.Title)
			return nil
		},
	}
	addBookFlags(cmd, &req.Title, &req.Author, &req.Description, &req.Difficulty,
		&req.Language, &req.CategoryID, &req.AudienceID, &req.PDFPath, &req.CoverPaths, &req.PageCount)
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("author")
	cmd.MarkFlagRequired("pdf")
	return cmd
}

func newBooksUpdateCmd(app *App) *cobra.Command {
	var req models.UpdateBookRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a book (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			if err := app.checkInput(req); err != nil {
				return err
			}
			book, err := app.Client.UpdateBook(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Printf("updated book %s\n", book.ID)
			return nil
		},
	}
	addBookFlags(cmd, &req.Title, &req.Author, &req.Description, &req.Difficulty,
		&req.Language, &req.CategoryID, &req.AudienceID, &req.PDFPath, &req.CoverPaths, &req.PageCount)
	return cmd
}

func addBookFlags(cmd *cobra.Command, title, author, description, difficulty, language, categoryID, audienceID, pdfPath *string, coverPaths *[]string, pageCount *int) {
	cmd.Flags().StringVar(title, "title", "", "book title")
	cmd.Flags().StringVar(author, "author", "", "author")
	cmd.Flags().StringVar(description, "description", "", "description")
	cmd.Flags().StringVar(difficulty, "difficulty", "", "Beginner, Intermediate or Advanced")
	cmd.Flags().StringVar(language, "language", "", "language")
	cmd.Flags().StringVar(categoryID, "category", "", "category id")
	cmd.Flags().StringVar(audienceID, "audience", "", "audience id")
	cmd.Flags().StringVar(pdfPath, "pdf", "", "path to the PDF file")
	cmd.Flags().StringSliceVar(coverPaths, "cover", nil, "path to a cover image (repeatable)")
	cmd.Flags().IntVar(pageCount, "pages", 0, "page count")
}

func newBooksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a book (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAdmin(); err != nil {
				return err
			}
			if err := app.Client.DeleteBook(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
