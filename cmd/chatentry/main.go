package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"chatentry/pkg/config"
	"chatentry/pkg/logging"
	"chatentry/pkg/timefmt"
	"chatentry/pkg/transcript"
	"chatentry/pkg/ui"
	"chatentry/pkg/ui/components/chatentry"
	"chatentry/pkg/ui/components/chatlist"
	"chatentry/pkg/version"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

const plainWidth = 80

func main() {
	configPath := flag.String("config", config.GetConfigPath(), "path to config.json")
	htmlOut := flag.Bool("html", false, "render the transcript as HTML to stdout")
	touch := flag.Bool("touch", false, "keep entry headers visible (coarse pointer)")
	locale := flag.String("locale", "", "override the default locale")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: chatentry [flags] transcript.json\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		printVersion(os.Stdout)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *touch {
		cfg.Pointer = config.PointerCoarse
	}
	if *locale != "" {
		cfg.Locale = *locale
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.Init(cfg,
		slog.String("source", flag.Arg(0)),
		slog.String("locale", cfg.Locale))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	if err := run(cfg, flag.Arg(0), *htmlOut, logger); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion(w io.Writer) {
	fmt.Fprint(w, version.Details())
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	return config.ApplyEnv(cfg)
}

func run(cfg config.Config, path string, htmlOut bool, logger *slog.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	items, err := transcript.LoadFile(path, transcript.Defaults{Locale: cfg.Locale, Brand: cfg.Brand})
	if err != nil {
		return err
	}
	logger.Info("transcript loaded",
		slog.String("path", path),
		slog.Int("messages", len(items)),
		slog.String("locale", cfg.Locale),
		slog.Bool("touch", cfg.Touch()))

	switch {
	case htmlOut:
		return renderHTML(os.Stdout, items, loc)
	case term.IsTerminal(int(os.Stdout.Fd())):
		model := ui.NewModel(items, ui.Options{
			List: chatlist.Options{
				Touch:          cfg.Touch(),
				MaxBubbleWidth: cfg.BubbleWidth,
				Location:       loc,
			},
			Source: path,
			Locale: timefmt.Resolve(cfg.Locale).Locale(),
			Logger: logger,
		})
		_, err := tea.NewProgram(model).Run()
		return err
	default:
		return renderPlain(os.Stdout, items, cfg, loc)
	}
}

func renderHTML(w io.Writer, items []transcript.Item, loc *time.Location) error {
	entries := make([]chatentry.Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, chatentry.Build(item.Props, chatentry.WithLocation(loc)))
	}
	return chatentry.RenderListHTML(w, entries)
}

// renderPlain prints every entry as if hovered, for pipes and files.
func renderPlain(w io.Writer, items []transcript.Item, cfg config.Config, loc *time.Location) error {
	for i, item := range items {
		e := chatentry.Build(item.Props, chatentry.WithLocation(loc))
		view := chatentry.View(e, chatentry.ViewOptions{
			Width:          plainWidth,
			MaxBubbleWidth: cfg.BubbleWidth,
			Hovered:        true,
			Touch:          cfg.Touch(),
		})
		sep := "\n"
		if i < len(items)-1 {
			sep = "\n\n"
		}
		if _, err := io.WriteString(w, view+sep); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	return nil
}
