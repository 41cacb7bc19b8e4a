package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	jet "github.com/go-jet/jet/v2/generator/sqlite"
)

var (
	outputDirectory string
	migrateTo       int
	migrateRollback bool
)

// schemaCmd groups the episode database schema commands
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "inspect and migrate the episode database schema",
	Long:  `inspect and migrate the episode database schema`,
}

var schemaVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the current and latest schema versions",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()
		cfg := loadConfig(log)

		store, err := sqlite.Open(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open episode database", zap.Error(err))
		}
		defer store.Close()

		current, err := store.SchemaVersion(ctx)
		if err != nil {
			log.Fatal("failed to read schema version", zap.Error(err))
		}

		latest, err := store.LatestVersion()
		if err != nil {
			log.Fatal("failed to list migrations", zap.Error(err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "current: %d\nlatest: %d\n", current, latest)
	},
}

var schemaMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "migrate the schema forward, or back with --rollback",
	Long: `Migrate the episode database schema to the version given by --to, which
defaults to the latest version. A forward migration never moves to an older
version and a rollback never moves to a newer one.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()
		cfg := loadConfig(log)

		store, err := sqlite.Open(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open episode database", zap.Error(err))
		}
		defer store.Close()

		target := uint(migrateTo)
		if migrateTo < 0 {
			target, err = store.LatestVersion()
			if err != nil {
				log.Fatal("failed to list migrations", zap.Error(err))
			}
		}

		if err := store.Migrate(ctx, target, migrateRollback); err != nil {
			log.Fatal("failed to migrate schema", zap.Error(err))
		}

		current, err := store.SchemaVersion(ctx)
		if err != nil {
			log.Fatal("failed to read schema version", zap.Error(err))
		}
		log.Infow("schema migrated", "version", current, "rollback", migrateRollback)
	},
}

// generateSchemaCmd regenerates the go-jet model and table code from the latest schema
var generateSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "generate database code",
	Long:  `generate database code`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		dir, err := os.MkdirTemp("", "tvsort-schema")
		if err != nil {
			log.Fatal(err)
		}
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "tmp.sqlite")
		tmpStorage, err := sqlite.New(ctx, path)
		if err != nil {
			log.Fatal(err)
		}
		tmpStorage.Close()

		err = jet.GenerateDSN(path, outputDirectory)
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("successfully generated to %s", outputDirectory)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaVersionCmd)
	schemaCmd.AddCommand(schemaMigrateCmd)
	schemaMigrateCmd.Flags().IntVar(&migrateTo, "to", -1, "target schema version, latest when negative")
	schemaMigrateCmd.Flags().BoolVar(&migrateRollback, "rollback", false, "roll the schema back to the target version")

	generateCmd.AddCommand(generateSchemaCmd)
	generateSchemaCmd.Flags().StringVarP(&outputDirectory, "out", "o", "./pkg/storage/sqlite/schema/gen", "directory to output generated code to")
}
