package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/kasuboski/tvsort/config"
	"github.com/kasuboski/tvsort/pkg/format"
	mio "github.com/kasuboski/tvsort/pkg/io"
	"github.com/kasuboski/tvsort/pkg/library"
	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/release"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tvsort",
	Short: "sort downloaded episodes into a tv library",
	Long: `tvsort moves a finished download into its series and season directory,
keeping duplicates and cleaning up files made redundant by the new episode.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yaml when present)")
}

const (
	defaultLockTimeout = time.Minute * 5
)

var defaultIgnoredExtensions = []string{"nfo", "sfv", "srr", "srs", "nzb", "par2", "txt", "url", "jpg", "png"}

func initConfig() {
	if cfgFile == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			cfgFile = "config.yaml"
		}
	}
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("TVSORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	templates := format.DefaultTemplates()

	viper.SetDefault("tv.roots", []string{})
	viper.SetDefault("tv.ignoredExtensions", defaultIgnoredExtensions)
	viper.SetDefault("tv.multiEpisode.aggressive", false)
	viper.SetDefault("tv.multiEpisode.prefer", false)
	viper.SetDefault("tv.templates.series", templates.Series)
	viper.SetDefault("tv.templates.season", templates.Season)
	viper.SetDefault("tv.templates.seriesEpisode", templates.SeriesEpisode)
	viper.SetDefault("tv.templates.dailyEpisode", templates.DailyEpisode)
	viper.SetDefault("tv.templates.smartTitle", templates.SmartTitle)
	viper.SetDefault("tv.dirMode", "0755")
	viper.SetDefault("tv.defaultQuality", "medium")

	viper.SetDefault("storage.filePath", "tvsort.sqlite")

	viper.SetDefault("logging.file", "")
	viper.SetDefault("logging.maxSizeMB", 10)
	viper.SetDefault("logging.maxBackups", 3)
	viper.SetDefault("logging.sortLog", false)

	viper.SetDefault("lockTimeout", defaultLockTimeout)
}

// loadConfig reads and validates the configuration, exiting when it is unusable
func loadConfig(log *zap.SugaredLogger) config.Config {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	return cfg
}

// newLibrary builds the filesystem library described by cfg
func newLibrary(ctx context.Context, cfg config.Config) *library.FileSystemLibrary {
	log := logger.FromCtx(ctx)

	aliases, duplicates := library.NewAliases(cfg.TV.Aliases)
	for _, d := range duplicates {
		log.Warnw("alias is configured for more than one series, keeping the first", "alias", d)
	}

	return library.New(
		cfg.TV.Roots,
		library.NewExtensions(cfg.TV.IgnoredExtensions),
		aliases,
		release.NewParser(),
		&mio.MediaFileSystem{},
	)
}
