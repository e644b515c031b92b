package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pranav244872/skillswap/config"
	db "github.com/pranav244872/skillswap/db/sqlc"
	"github.com/pranav244872/skillswap/skillz"
	"github.com/spf13/cobra"
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Manage skill aliases used to canonicalize suggested skills",
}

var aliasesImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Upsert aliases from a YAML file of canonical: [alias, ...]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		aliasMap, err := skillz.LoadAliasFile(args[0])
		if err != nil {
			return err
		}
		return withStore(cmd.Context(), func(ctx context.Context, store db.Store) error {
			return importAliases(ctx, cmd.OutOrStdout(), store, aliasMap)
		})
	},
}

var aliasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every stored alias",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, store db.Store) error {
			return listAliases(ctx, cmd.OutOrStdout(), store)
		})
	},
}

func init() {
	aliasesCmd.AddCommand(aliasesImportCmd, aliasesListCmd)
	rootCmd.AddCommand(aliasesCmd)
}

// withStore opens a pool from app.env for the duration of fn.
func withStore(ctx context.Context, fn func(context.Context, db.Store) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(flagConfigDir)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("could not connect to the database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, db.NewStore(pool))
}

// importAliases upserts every alias in a stable order. Canonical names
// that only map to themselves are skipped.
func importAliases(ctx context.Context, w io.Writer, store db.Querier, aliasMap map[string]string) error {
	names := make([]string, 0, len(aliasMap))
	for alias, canonical := range aliasMap {
		if alias != skillz.NormalizeTag(canonical) {
			names = append(names, alias)
		}
	}
	sort.Strings(names)

	for _, alias := range names {
		_, err := store.UpsertSkillAlias(ctx, db.UpsertSkillAliasParams{
			AliasName:     alias,
			CanonicalName: aliasMap[alias],
		})
		if err != nil {
			printErr(w, fmt.Sprintf("%s -> %s: %v", alias, aliasMap[alias], err))
			return fmt.Errorf("import stopped at alias %q: %w", alias, err)
		}
	}

	printOK(w, fmt.Sprintf("imported %d aliases", len(names)))
	return nil
}

func listAliases(ctx context.Context, w io.Writer, store db.Querier) error {
	rows, err := store.GetAllSkillAliases(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		printInfo(w, "no aliases stored")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALIAS\tCANONICAL")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.AliasName, row.CanonicalName)
	}
	return tw.Flush()
}
