package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/genre"
)

func newGenresCmd() *cobra.Command {
	var (
		ancestorsOf string
		bookID      string
		genreID     string
	)

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "Inspect the genre hierarchy",
		Long: `With no flags, print the genre forest as a tree.

--ancestors-of walks from a genre up to its root.
--book with --genre asks whether the book falls under the genre,
counting descendant genres.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ancestorsOf != "" {
				chain, err := genre.Ancestors(snap.Genres, ancestorsOf)
				if err != nil {
					return fmt.Errorf("walking ancestors of %s: %w", ancestorsOf, err)
				}
				if len(chain) == 0 {
					fmt.Printf("%s is a root (or unknown)\n", ancestorsOf)
					return nil
				}
				names := make([]string, 0, len(chain))
				for _, g := range chain {
					names = append(names, g.ID)
				}
				fmt.Printf("%s → %s\n", ancestorsOf, strings.Join(names, " → "))
				return nil
			}

			if bookID != "" || genreID != "" {
				if bookID == "" || genreID == "" {
					return fmt.Errorf("--book and --genre go together")
				}
				b := catalog.BookByID(snap.Books, bookID)
				if b == nil {
					return fmt.Errorf("book %q not found", bookID)
				}
				in, err := genre.BookInGenre(*b, snap.Genres, genreID)
				if err != nil {
					return fmt.Errorf("checking genre membership: %w", err)
				}
				if in {
					ok("%s falls under %s", b.Title, genreID)
				} else {
					fmt.Printf("%s is not under %s\n", b.Title, genreID)
				}
				return nil
			}

			if len(snap.Genres) == 0 {
				warn("No genres in the catalog.")
				return nil
			}
			printGenreTree()
			return nil
		},
	}

	cmd.Flags().StringVar(&ancestorsOf, "ancestors-of", "", "Print the ancestor chain of a genre id")
	cmd.Flags().StringVar(&bookID, "book", "", "Book id for a membership check")
	cmd.Flags().StringVar(&genreID, "genre", "", "Genre id for a membership check")
	return cmd
}

func printGenreTree() {
	children := make(map[string][]catalog.Genre)
	var roots []catalog.Genre
	for _, g := range snap.Genres {
		if g.ParentID == "" {
			roots = append(roots, g)
		} else {
			children[g.ParentID] = append(children[g.ParentID], g)
		}
	}

	var walk func(g catalog.Genre, depth int)
	walk = func(g catalog.Genre, depth int) {
		if depth > len(snap.Genres) {
			warn("genre tree deeper than the genre count, stopping at %s", g.ID)
			return
		}
		indent := strings.Repeat("  ", depth)
		count := len(catalog.BooksOfGenre(snap.Books, g.ID))
		line := fmt.Sprintf("%s%s  %s", indent, color.WhiteString(g.ID), g.Name)
		if count > 0 {
			line += color.CyanString(" (%d)", count)
		}
		fmt.Println(line)
		for _, c := range children[g.ID] {
			walk(c, depth+1)
		}
	}

	header("Genres")
	for _, r := range roots {
		walk(r, 0)
	}
}
