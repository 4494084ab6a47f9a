package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/genre"
	"github.com/blackwell-systems/librec/internal/tui"
)

type bookResult struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Year   int      `json:"year,omitempty"`
	Genres []string `json:"genres,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Avg    float64  `json:"avg"`
}

func newBooksCmd() *cobra.Command {
	var (
		genreID   string
		subgenres bool
		tag       string
		search    string
		year      int
		minAvg    float64
		forUser   string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:     "books",
		Aliases: []string{"ls"},
		Short:   "Browse the catalog (interactive TUI or text output)",
		Long: `List catalog books matching the given filters.

With --genre and --subgenres the match walks the genre hierarchy, so
books tagged with any descendant genre count too. With --for the
recommendation engine marks books recommended for that user.

Examples:
  librec books --genre fantasy --subgenres
  librec books --search wizard --min-avg 4 --json
  librec books --for user-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := catalog.Filter{Tag: tag, Search: search, Year: year}
			if !subgenres {
				f.Genre = genreID
			}
			books := f.Apply(snap.Books)

			if subgenres && genreID != "" {
				var kept []catalog.Book
				for _, b := range books {
					in, err := genre.BookInGenre(b, snap.Genres, genreID)
					if err != nil {
						return fmt.Errorf("walking genre hierarchy: %w", err)
					}
					if in {
						kept = append(kept, b)
					}
				}
				books = kept
			}

			if minAvg > 0 {
				books = catalog.BooksWithAvgAtLeast(snap.Ratings, books, minAvg)
			}

			if len(books) == 0 {
				warn("No books found.")
				return nil
			}

			recommended := make(map[string]bool)
			if forUser != "" {
				for _, id := range recCache.ForUser(forUser, snap.Ratings, snap.Books) {
					recommended[id] = true
				}
			}

			if tui.ShouldUseTUI(cmd) {
				items := make([]tui.BookItem, 0, len(books))
				for _, b := range books {
					items = append(items, tui.BookItem{
						Book:        b,
						Avg:         catalog.AvgRatingForBook(snap.Ratings, b.ID),
						Recommended: recommended[b.ID],
					})
				}
				result, err := tui.RunListBrowser("Catalog", items)
				if err != nil {
					return err
				}
				if result.Action == tui.ActionShowDetails && result.BookItem != nil {
					printBookDetails(result.BookItem.Book)
				}
				return nil
			}

			if jsonOut {
				results := make([]bookResult, 0, len(books))
				for _, b := range books {
					results = append(results, bookResult{
						ID:     b.ID,
						Title:  b.Title,
						Year:   b.Year,
						Genres: b.Genres,
						Tags:   b.Tags,
						Avg:    catalog.AvgRatingForBook(snap.Ratings, b.ID),
					})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, b := range books {
				avg := catalog.AvgRatingForBook(snap.Ratings, b.ID)
				avgStr := "     "
				if avg > 0 {
					avgStr = fmt.Sprintf("%.1f★ ", avg)
				}
				tagStr := ""
				if len(b.Tags) > 0 {
					tagStr = " " + color.CyanString("["+strings.Join(b.Tags, ",")+"]")
				}
				recMark := ""
				if recommended[b.ID] {
					recMark = color.GreenString(" ♥")
				}
				fmt.Printf("  %-12s  %s%s%s%s\n",
					color.WhiteString(b.ID),
					avgStr,
					b.Title,
					tagStr,
					recMark,
				)
			}
			fmt.Printf("\n%d book(s)\n", len(books))
			return nil
		},
	}

	cmd.Flags().StringVar(&genreID, "genre", "", "Filter by genre id")
	cmd.Flags().BoolVar(&subgenres, "subgenres", false, "Match descendant genres too (with --genre)")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag id")
	cmd.Flags().StringVar(&search, "search", "", "Match id, title, or tags")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by publication year")
	cmd.Flags().Float64Var(&minAvg, "min-avg", 0, "Minimum average rating")
	cmd.Flags().StringVar(&forUser, "for", "", "Mark books recommended for this user id")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printBookDetails(b catalog.Book) {
	header("Book: %s", b.ID)
	printField("title", b.Title)
	if b.Year != 0 {
		printField("year", fmt.Sprintf("%d", b.Year))
	}
	if len(b.AuthorIDs) > 0 {
		names := make([]string, 0, len(b.AuthorIDs))
		for _, id := range b.AuthorIDs {
			name := id
			for _, a := range snap.Authors {
				if a.ID == id {
					name = a.Name
					break
				}
			}
			names = append(names, name)
		}
		printField("authors", strings.Join(names, ", "))
	}
	if len(b.Genres) > 0 {
		printField("genres", strings.Join(b.Genres, ", "))
	}
	if len(b.Tags) > 0 {
		printField("tags", strings.Join(b.Tags, ", "))
	}
	avg := catalog.AvgRatingForBook(snap.Ratings, b.ID)
	printField("avg rating", fmt.Sprintf("%.2f", avg))
	if catalog.BookHasReviews(snap.Reviews, b.ID) {
		for _, rv := range snap.Reviews {
			if rv.BookID == b.ID {
				fmt.Printf("  %s %s\n", color.CyanString("review:"), rv.Text)
			}
		}
	}
}
