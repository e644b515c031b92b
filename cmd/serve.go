package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pranav244872/skillswap/api"
	"github.com/pranav244872/skillswap/config"
	db "github.com/pranav244872/skillswap/db/sqlc"
	"github.com/pranav244872/skillswap/skillz"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Step 1: Load configuration
	cfg, err := config.LoadConfig(flagConfigDir)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	log.Println("✅ Configuration loaded successfully.")

	// Step 2: Establish database connection pool
	connPool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("could not connect to the database: %w", err)
	}
	defer connPool.Close()
	log.Println("✅ Database connection pool established.")

	// Step 3: Initialize the database store
	store := db.NewStore(connPool)

	// Step 4: Build the alias map for skill suggestions
	log.Println("🔄 Loading skill aliases from the database...")
	aliasMap, err := loadAliasMap(ctx, store)
	if err != nil {
		return fmt.Errorf("could not load skill aliases: %w", err)
	}
	log.Printf("✅ Loaded %d skill aliases.", len(aliasMap))

	// Step 5: Initialize the skill suggestion service
	geminiClient := skillz.NewGeminiLLMClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL, &http.Client{Timeout: 30 * time.Second})
	processor := skillz.NewLLMProcessor(aliasMap, geminiClient)
	if cfg.GeminiAPIKey == "" {
		log.Println("WARN: GEMINI_API_KEY is empty, skill suggestions will fail.")
	}
	log.Println("✅ Skill processor (Gemini) initialized.")

	// Step 6: Create the API server
	server, err := api.NewServer(cfg, store, processor)
	if err != nil {
		return fmt.Errorf("could not create the server: %w", err)
	}
	log.Println("✅ API server created.")

	// Step 7: Start the HTTP server
	log.Printf("🚀 Starting server on %s", cfg.ServerAddress)
	return server.Start(cfg.ServerAddress)
}

func loadAliasMap(ctx context.Context, store db.Store) (map[string]string, error) {
	rows, err := store.GetAllSkillAliases(ctx)
	if err != nil {
		return nil, err
	}

	aliasMap := make(map[string]string, len(rows))
	for _, row := range rows {
		aliasMap[row.AliasName] = row.CanonicalName
	}
	return aliasMap, nil
}
