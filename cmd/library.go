package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// libraryCmd prints the episode files of one series as they are on disk
var libraryCmd = &cobra.Command{
	Use:   "library <series>",
	Short: "list the episode files of a series",
	Long: `List the episode files of a series found in the tv roots. The series name
is matched the same way a download is, so aliases apply.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()
		cfg := loadConfig(log)
		ctx = logger.WithCtx(ctx, log)

		lib := newLibrary(ctx, cfg)
		series, ok, err := lib.ResolveSeries(ctx, args[0])
		if err != nil {
			log.Fatal("failed to list series", zap.Error(err))
		}
		if !ok {
			log.Fatalw("series not found in any tv root", "series", args[0])
		}

		episodes, err := lib.FindEpisodes(ctx, series)
		if err != nil {
			log.Fatal("failed to list episodes", zap.Error(err))
		}
		sort.Slice(episodes, func(i, j int) bool {
			return episodes[i].RelativePath < episodes[j].RelativePath
		})

		var total uint64
		rows := make([][]string, 0, len(episodes))
		for _, e := range episodes {
			kind := "single"
			if e.IsMulti() {
				kind = "multi"
			}
			size := uint64(max(e.Size, 0))
			total += size
			rows = append(rows, []string{e.Identity.Key(), kind, e.RelativePath, humanize.IBytes(size)})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", series.Name, series.Path)
		fmt.Fprintln(out, renderTable(
			[]string{"Episode", "Kind", "Path", "Size"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
		))
		fmt.Fprintf(out, "%d files, %s\n", len(episodes), humanize.IBytes(total))
	},
}

func init() {
	rootCmd.AddCommand(libraryCmd)
}
