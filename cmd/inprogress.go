package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/kasuboski/tvsort/pkg/release"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inProgressCategory string
	inProgressQuality  string
)

// inProgressCmd manages downloads that have been handed to the downloader
var inProgressCmd = &cobra.Command{
	Use:     "inprogress",
	Aliases: []string{"in-progress"},
	Short:   "manage queued downloads",
	Long:    `manage queued downloads`,
}

var inProgressAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "record a download that was queued",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()
		cfg := loadConfig(log)

		title := args[0]
		var tier quality.Tier
		if inProgressQuality != "" {
			var err error
			tier, err = quality.Parse(inProgressQuality)
			if err != nil {
				log.Fatal("invalid quality", zap.Error(err))
			}
		} else {
			fallback, err := cfg.TV.DefaultTier()
			if err != nil {
				log.Fatal("invalid default quality", zap.Error(err))
			}
			tier = release.DetectQuality(title, fallback)
		}

		store, err := sqlite.New(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open episode database", zap.Error(err))
		}
		defer store.Close()

		err = store.AddInProgress(ctx, model.InProgress{
			Title:    title,
			Category: inProgressCategory,
			Quality:  tier.String(),
		})
		if err != nil {
			log.Fatal("failed to record download", zap.Error(err))
		}

		log.Infow("download recorded", "title", title, "quality", tier)
	},
}

var inProgressDeleteCmd = &cobra.Command{
	Use:   "delete <title>...",
	Short: "forget queued downloads",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()
		cfg := loadConfig(log)

		store, err := sqlite.New(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open episode database", zap.Error(err))
		}
		defer store.Close()

		deleted, err := store.DeleteInProgress(ctx, args...)
		if err != nil {
			log.Fatal("failed to delete downloads", zap.Error(err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d of %d\n", deleted, len(args))
	},
}

func init() {
	rootCmd.AddCommand(inProgressCmd)
	inProgressCmd.AddCommand(inProgressAddCmd)
	inProgressCmd.AddCommand(inProgressDeleteCmd)
	inProgressAddCmd.Flags().StringVarP(&inProgressCategory, "category", "c", "tv", "downloader category")
	inProgressAddCmd.Flags().StringVarP(&inProgressQuality, "quality", "q", "", "quality tier, detected from the title when empty")
}
