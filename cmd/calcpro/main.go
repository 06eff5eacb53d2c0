package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/gophersatwork/calcpro"
	"github.com/gophersatwork/calcpro/internal/tui"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "calcpro.yaml", "Path to the YAML config file")
	dataDir := flag.String("data-dir", "", "Directory for history and preferences (overrides config)")
	eval := flag.String("eval", "", "Evaluate a token line such as \"2 + 3 * 4 =\" and exit")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	showStats := flag.Bool("show-store-stats", false, "Show store statistics and exit")
	flag.Parse()

	cfg, err := calcpro.LoadConfig(afero.NewOsFs(), *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := calcpro.Open(cfg.DataDir, calcpro.WithStoreLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *showStats {
		stats, err := store.Stats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Records:       %d\n", stats.Records)
		fmt.Printf("Total size:    %d bytes\n", stats.TotalSize)
		fmt.Printf("Corrupt:       %d\n", stats.Corrupt)
		fmt.Printf("Oldest update: %v ago\n", stats.OldestUpdate)
		fmt.Printf("Newest update: %v ago\n", stats.NewestUpdate)
		return
	}

	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts = append(opts, calcpro.WithStore(store), calcpro.WithLogger(logger))
	calc := calcpro.New(opts...)

	if *eval != "" {
		os.Exit(runEval(calc, *eval))
	}

	if _, err := tea.NewProgram(tui.New(calc, cfg.ErrorDisplay)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runEval delivers a token line and prints the final display.
// It returns the process exit code.
func runEval(calc *calcpro.Calculator, line string) int {
	events, err := calcpro.ParseEvents(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	for _, evt := range events {
		out, err := calc.Apply(evt)
		if err != nil {
			fmt.Fprintln(os.Stderr, out.Error)
			return 1
		}
	}
	fmt.Println(calc.Display())
	return 0
}
