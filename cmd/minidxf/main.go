package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/minidxf/internal/cliconfig"
	"github.com/bft-labs/minidxf/internal/render"
	"github.com/bft-labs/minidxf/internal/watch"
	"github.com/bft-labs/minidxf/pkg/log"
)

const longHelp = `Compile TOML drawing descriptions into DXF (R12) files.

A drawing lists lines, arcs and three-point arcs in draw order, followed by
optional transforms (translate, rotate, move_to_origin). Output contains a
single default layer table and only LINE and ARC entities.

Configuration is read from $HOME/.minidxf/config.toml, then MINIDXF_*
environment variables, then flags.`

var exampleUsage = strings.TrimSpace(`
  minidxf render bracket.toml
  minidxf render bracket.toml -o out/bracket.dxf --units inch --move-to-origin
  minidxf render bracket.toml --watch
  minidxf info bracket.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// loadConfig layers file, environment and flags into cfg.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	} else if cfgPath != "" {
		return fmt.Errorf("config file %s not found", cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}

func newLogger(level string) (*log.ZerologLogger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewZerologLogger(os.Stderr, lvl), nil
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "minidxf",
		Short:         "Compile drawing descriptions into DXF files",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.minidxf/config.toml)")
	root.PersistentFlags().StringVar(&cfg.Units, "units", cfg.Units, "drawing units, mm or inch (default: units from the drawing file)")
	root.PersistentFlags().BoolVar(&cfg.MoveToOrigin, "move-to-origin", cfg.MoveToOrigin, "translate the drawing so its bounding box starts at (0, 0)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	renderCmd := &cobra.Command{
		Use:   "render <drawing.toml>",
		Short: "Write the DXF file for a drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger.Debug("configuration", log.Any("config", cfg))
			return runRender(cmd.Context(), args[0], cfg, logger)
		},
	}
	renderCmd.Flags().StringVarP(&cfg.Output, "out", "o", cfg.Output, "output path (default: drawing name with .dxf)")
	renderCmd.Flags().StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "directory for the derived output path")
	renderCmd.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render whenever the drawing file changes")
	renderCmd.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before re-rendering in watch mode")

	infoCmd := &cobra.Command{
		Use:   "info <drawing.toml>",
		Short: "Print entity count and extents of a drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			res, err := render.New(logger).Inspect(args[0], render.Options{
				Units:        cfg.Units,
				MoveToOrigin: cfg.MoveToOrigin,
			})
			if err != nil {
				return err
			}
			printInfo(cmd, args[0], res)
			return nil
		},
	}

	root.AddCommand(renderCmd, infoCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fallback := log.NewZerologLogger(os.Stderr, zerolog.InfoLevel)
		fallback.Error("minidxf", log.Err(err))
		stop()
		os.Exit(1)
	}
}

func runRender(ctx context.Context, input string, cfg cliconfig.Config, logger log.Logger) error {
	r := render.New(logger)
	opts := render.Options{
		Units:        cfg.Units,
		Output:       cfg.Output,
		OutDir:       cfg.OutDir,
		MoveToOrigin: cfg.MoveToOrigin,
	}

	if !cfg.Watch {
		_, err := r.Render(input, opts)
		return err
	}

	// a broken drawing must not stop the watch loop
	rerender := func() {
		if _, err := r.Render(input, opts); err != nil {
			logger.Error("render failed", log.String("input", input), log.Err(err))
		}
	}
	rerender()
	w := watch.New(input, cfg.Debounce, logger, rerender)
	if err := w.Run(ctx); err != nil {
		return err
	}
	logger.Info("stopped watching")
	return nil
}

func printInfo(cmd *cobra.Command, input string, res render.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "drawing:  %s\n", input)
	fmt.Fprintf(out, "units:    %s (INSUNITS %d)\n", res.Units, res.Units.Code())
	fmt.Fprintf(out, "entities: %d\n", res.Entities)
	if !res.HasBounds {
		fmt.Fprintln(out, "bounds:   (empty)")
		return
	}
	b := res.Bounds
	fmt.Fprintf(out, "bounds:   (%g, %g) - (%g, %g)\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
	fmt.Fprintf(out, "width:    %g\n", res.Width())
	fmt.Fprintf(out, "height:   %g\n", res.Height())
}
