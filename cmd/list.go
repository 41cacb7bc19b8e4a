package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list series and downloads",
	Long:  `list series and downloads`,
}

// listSeriesCmd lists the series directories in the tv roots alongside what the database knows
var listSeriesCmd = &cobra.Command{
	Use:   "series",
	Short: "list series found in the tv roots",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()
		cfg := loadConfig(log)
		ctx = logger.WithCtx(ctx, log)

		lib := newLibrary(ctx, cfg)
		series, err := lib.ListSeries(ctx)
		if err != nil {
			log.Fatal("failed to list series", zap.Error(err))
		}

		store, err := sqlite.New(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open episode database", zap.Error(err))
		}
		defer store.Close()

		recorded, err := store.ListSeries(ctx)
		if err != nil {
			log.Fatal("failed to list recorded series", zap.Error(err))
		}
		daily := make(map[string]bool, len(recorded))
		for _, s := range recorded {
			daily[s.SanitizedName] = s.Daily
		}

		keys := make([]string, 0, len(series))
		for k := range series {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			s := series[k]
			_, known := daily[k]
			rows = append(rows, []string{s.Name, s.Root, strconv.FormatBool(known), strconv.FormatBool(daily[k])})
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Series", "Root", "Recorded", "Daily"}, rows, nil))
	},
}

var listInProgressCmd = &cobra.Command{
	Use:     "inprogress",
	Aliases: []string{"in-progress"},
	Short:   "list downloads that have been queued but not sorted",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()
		cfg := loadConfig(log)

		store, err := sqlite.New(ctx, cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open episode database", zap.Error(err))
		}
		defer store.Close()

		entries, err := store.ListInProgress(ctx)
		if err != nil {
			log.Fatal("failed to list in-progress downloads", zap.Error(err))
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Title, e.Category, e.Quality})
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Title", "Category", "Quality"}, rows, nil))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listSeriesCmd)
	listCmd.AddCommand(listInProgressCmd)
}
