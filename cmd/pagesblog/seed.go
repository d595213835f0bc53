package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/pagesblog"
	"github.com/eringen/pagesblog/content"
)

func newSeedCmd() *cobra.Command {
	var dbPath, contentDir string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write articles into a SQLite database",
		Long:  "Seed copies the builtin articles, or the markdown files in --content, into the database at --db.",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles := content.Builtin()
			if contentDir != "" {
				var err error
				if articles, err = content.LoadDir(os.DirFS(contentDir)); err != nil {
					return err
				}
			}
			// NewCatalog validates ids and paths before anything is written.
			cat, err := content.NewCatalog(articles)
			if err != nil {
				return err
			}
			store, err := pagesblog.NewStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SaveArticles(cat.Articles()); err != nil {
				return err
			}
			if err := verifySeed(store, cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d articles into %s\n", cat.Len(), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", pagesblog.EnvOr("DATABASE_PATH", "data/blog.db"), "SQLite database path")
	cmd.Flags().StringVar(&contentDir, "content", "", "directory of markdown files with front matter")
	return cmd
}

// verifySeed reads every seeded slug back and compares it with the catalog.
func verifySeed(store *pagesblog.Store, cat *content.Catalog) error {
	for _, want := range cat.Articles() {
		got, err := store.GetArticle(want.Path)
		if err != nil {
			return fmt.Errorf("verify %s: %w", want.Path, err)
		}
		if got.ID != want.ID || got.Title != want.Title || got.Content != want.Content {
			return fmt.Errorf("verify %s: stored article differs", want.Path)
		}
	}
	return nil
}
