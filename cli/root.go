package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ourlove/config"
	"ourlove/logging"
	"ourlove/lovetime"
	"ourlove/server"
	"ourlove/storage"
	"ourlove/tui"
	"ourlove/youtube"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app holds the state shared by all commands once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the ourlove command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ourlove",
		Short: "Count every second since the moment it all began",
		Long: `ourlove keeps a live count of the years, months, days, hours, minutes
and seconds since a reference moment, next to a shared diary and a small
YouTube proxy for the songs that go with it.

Run "ourlove tui" for the dashboard or "ourlove serve" for the HTTP API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default ~/.ourlove/config.yaml or $OURLOVE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(a.counterCmd())
	rootCmd.AddCommand(a.serveCmd())
	rootCmd.AddCommand(a.tuiCmd())
	rootCmd.AddCommand(a.diaryCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) calculator(reference string) (*lovetime.Calculator, error) {
	if reference == "" {
		reference = a.cfg.Love.Reference
	}
	ref, err := lovetime.ParseReference(reference, time.Local)
	if err != nil {
		return nil, err
	}
	return lovetime.NewCalculator(ref)
}

func (a *app) diary() *storage.Diary {
	path := a.cfg.Diary.Path
	if path == "" {
		path = storage.DefaultDiaryPath()
	}
	a.logger.Debug("using diary", zap.String("path", path))
	return storage.NewDiary(path)
}

func (a *app) youtubeClient() (*youtube.Client, error) {
	timeout, err := a.cfg.YouTubeTimeout()
	if err != nil {
		return nil, err
	}
	if a.cfg.YouTube.APIKey == "" {
		a.logger.Warn("YOUTUBE_API_KEY not set, search will serve demo data")
	}
	return youtube.NewClient(youtube.Config{
		APIKey:  a.cfg.YouTube.APIKey,
		BaseURL: a.cfg.YouTube.BaseURL,
		Timeout: timeout,
		Logger:  a.logger.Named("youtube"),
	}), nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func (a *app) counterCmd() *cobra.Command {
	var (
		atTime    string
		reference string
		watch     bool
		count     int
	)

	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Show how long it has been since the reference moment",
		Example: `  ourlove counter
  ourlove counter --at "2024-02-14 20:00"
  ourlove counter --reference 2020-02-29T12:00:00 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := a.calculator(reference)
			if err != nil {
				return err
			}
			if !watch {
				return CommandCounter(cmd.OutOrStdout(), calc, atTime)
			}
			if atTime != "" {
				return fmt.Errorf("--at cannot be combined with --watch")
			}

			interval, err := a.cfg.TickInterval()
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return CommandWatch(ctx, cmd.OutOrStdout(), lovetime.NewTicker(calc, interval), count)
		},
	}

	cmd.Flags().StringVar(&atTime, "at", "", "Compute at this moment instead of now (ISO 8601 or HH:MM)")
	cmd.Flags().StringVar(&reference, "reference", "", "Override the configured reference moment")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep counting, refreshing every tick")
	cmd.Flags().IntVar(&count, "count", 0, "With --watch, stop after this many updates")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the counter, diary and YouTube proxy over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := a.calculator("")
			if err != nil {
				return err
			}
			yt, err := a.youtubeClient()
			if err != nil {
				return err
			}
			shutdown, err := a.cfg.ShutdownTimeout()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			srv, err := server.New(server.Config{
				Addr:            addr,
				ShutdownTimeout: shutdown,
				Version:         Version,
				SiteName:        a.cfg.SiteName,
				PartnerName:     a.cfg.Love.PartnerName,
				Tagline:         a.cfg.Love.Tagline,
				RegionCode:      a.cfg.YouTube.RegionCode,
			}, calc, a.diary(), yt, a.logger.Named("server"))
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, or :$PORT)")
	return cmd
}

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := a.calculator("")
			if err != nil {
				return err
			}
			interval, err := a.cfg.TickInterval()
			if err != nil {
				return err
			}
			return tui.LaunchTUI(tui.Options{
				Calculator:   calc,
				Diary:        a.diary(),
				Title:        a.cfg.SiteName,
				PartnerName:  a.cfg.Love.PartnerName,
				Tagline:      a.cfg.Love.Tagline,
				TickInterval: interval,
			})
		},
	}
}

func (a *app) diaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Read and write diary notes",
	}

	var query string
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return CommandDiaryList(cmd.OutOrStdout(), a.diary(), query, time.Local)
		},
	}
	listCmd.Flags().StringVarP(&query, "search", "s", "", "Only notes whose subject or content contains this text")

	searchCmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Find notes by subject or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return CommandDiaryList(cmd.OutOrStdout(), a.diary(), args[0], time.Local)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return CommandDiaryShow(cmd.OutOrStdout(), a.diary(), args[0], time.Local)
		},
	}

	var addSubject string
	addCmd := &cobra.Command{
		Use:   "add [content...]",
		Short: "Write a new note",
		RunE: func(cmd *cobra.Command, args []string) error {
			return CommandDiaryAdd(cmd.OutOrStdout(), a.diary(), addSubject, strings.Join(args, " "))
		},
	}
	addCmd.Flags().StringVarP(&addSubject, "subject", "s", "", "Note subject")

	var editSubject, editContent string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a note's subject or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var subject, content *string
			if cmd.Flags().Changed("subject") {
				subject = &editSubject
			}
			if cmd.Flags().Changed("content") {
				content = &editContent
			}
			return CommandDiaryEdit(cmd.OutOrStdout(), a.diary(), args[0], subject, content)
		},
	}
	editCmd.Flags().StringVarP(&editSubject, "subject", "s", "", "New subject")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return CommandDiaryRemove(cmd.OutOrStdout(), a.diary(), args[0])
		},
	}

	var format, output string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all notes as JSON or markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return CommandDiaryExport(cmd.OutOrStdout(), a.diary(), format, time.Local)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			if err := CommandDiaryExport(f, a.diary(), format, time.Local); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json or markdown")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge notes from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return CommandDiaryImport(cmd.OutOrStdout(), a.diary(), args[0])
		},
	}

	cmd.AddCommand(listCmd, searchCmd, showCmd, addCmd, editCmd, rmCmd, exportCmd, importCmd)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ourlove %s\n", Version)
			return nil
		},
	}
}
