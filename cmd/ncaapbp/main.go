// Package main provides the CLI entrypoint for ncaapbp.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkal22/ncaa-hoops-pbp/internal/api/rest"
	"github.com/nkal22/ncaa-hoops-pbp/internal/collect"
	"github.com/nkal22/ncaa-hoops-pbp/internal/config"
	"github.com/nkal22/ncaa-hoops-pbp/internal/csvio"
	"github.com/nkal22/ncaa-hoops-pbp/internal/ncaa"
	"github.com/nkal22/ncaa-hoops-pbp/internal/onoff"
)

const (
	defaultTeam     = "Virginia"
	defaultSport    = "MBB"
	defaultSeason   = 2025
	defaultDivision = 1
	defaultDelay    = 2
	defaultAddr     = ":8080"
)

var (
	collectTeam      string
	collectSport     string
	collectSeason    int
	collectDivision  int
	collectOpponents []string
	collectBrowser   bool
	collectDelay     int
	collectOut       string

	onoffPath      string
	onoffTeam      string
	onoffPlayers   []string
	onoffOpponents []string
	onoffOut       string

	teamsSport    string
	teamsSeason   int
	teamsDivision int
	teamsBrowser  bool
	teamsDelay    int

	serveAddr    string
	serveBrowser bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ncaapbp",
		Short:         "NCAA basketball play-by-play collection and on/off analytics",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newCollectCmd())
	rootCmd.AddCommand(newOnOffCmd())
	rootCmd.AddCommand(newTeamsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newCollectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Scrape a team's season play-by-play into a CSV",
		Args:  cobra.NoArgs,
		RunE:  runCollectCmd,
	}
	cmd.Flags().StringVar(&collectTeam, "team", defaultTeam, "team name as listed in the NCAA directory")
	cmd.Flags().StringVar(&collectSport, "sport", defaultSport, "sport code (MBB or WBB)")
	cmd.Flags().IntVar(&collectSeason, "season", defaultSeason, "academic year (2025 = 2024-25)")
	cmd.Flags().IntVar(&collectDivision, "division", defaultDivision, "NCAA division (1-3)")
	cmd.Flags().StringSliceVar(&collectOpponents, "opponent", []string{"all"}, "opponents to collect, or 'all'")
	cmd.Flags().BoolVar(&collectBrowser, "browser", false, "render pages in headless Chrome when plain requests are rejected")
	cmd.Flags().IntVar(&collectDelay, "delay", defaultDelay, "seconds between page requests")
	cmd.Flags().StringVar(&collectOut, "out", ".", "output directory")
	return cmd
}

func runCollectCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "team", &collectTeam, fileCfg.Collect.Team)
	applyStringConfig(cmd, "sport", &collectSport, fileCfg.Collect.Sport)
	applyIntConfig(cmd, "season", &collectSeason, fileCfg.Collect.Season)
	applyIntConfig(cmd, "division", &collectDivision, fileCfg.Collect.Division)
	applyBoolConfig(cmd, "browser", &collectBrowser, fileCfg.Collect.Browser)
	applyStringConfig(cmd, "out", &collectOut, fileCfg.Collect.OutDir)

	if err := validateCollect(); err != nil {
		return err
	}

	client := newClient(collectBrowser, collectDelay)
	defer client.Close()

	ctx, cancel := signalContext()
	defer cancel()

	runner := collect.NewRunner(client)
	res, err := runner.Run(ctx, collect.Request{
		Team:      collectTeam,
		Sport:     collectSport,
		Season:    collectSeason,
		Division:  collectDivision,
		Opponents: collectOpponents,
	})
	if err != nil {
		return fmt.Errorf("collection failed: %w", err)
	}

	path := filepath.Join(collectOut, csvio.EventsFileName(collectTeam, time.Now()))
	if err := csvio.WriteEventsFile(path, res.Events); err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d events from %d games to %s\n", len(res.Events), len(res.Games), path)
	if len(res.Skipped) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d contests (see log)\n", len(res.Skipped))
	}
	return nil
}

func validateCollect() error {
	if strings.TrimSpace(collectTeam) == "" {
		return fmt.Errorf("--team must not be empty")
	}
	if collectSport != "MBB" && collectSport != "WBB" {
		return fmt.Errorf("--sport must be MBB or WBB")
	}
	if collectSeason < 1900 {
		return fmt.Errorf("--season must be a 4-digit academic year")
	}
	if collectDivision < 1 || collectDivision > 3 {
		return fmt.Errorf("--division must be 1-3")
	}
	if collectDelay < 0 {
		return fmt.Errorf("--delay must be >= 0")
	}
	return nil
}

func newOnOffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onoff",
		Short: "Compute on/off splits for players from a collected CSV",
		Args:  cobra.NoArgs,
		RunE:  runOnOffCmd,
	}
	cmd.Flags().StringVar(&onoffPath, "pbp-data", "", "path to a collected play-by-play CSV")
	cmd.Flags().StringVar(&onoffTeam, "team", "", "team the players belong to")
	cmd.Flags().StringSliceVar(&onoffPlayers, "players", nil, "target players (comma-separated or repeated)")
	cmd.Flags().StringSliceVar(&onoffOpponents, "opponent", []string{"all"}, "limit to games against these opponents, or 'all'")
	cmd.Flags().StringVar(&onoffOut, "out", ".", "output directory")
	return cmd
}

func runOnOffCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "team", &onoffTeam, fileCfg.OnOff.Team)
	applyStringConfig(cmd, "out", &onoffOut, fileCfg.OnOff.OutDir)

	if onoffPath == "" {
		return fmt.Errorf("--pbp-data is required")
	}
	if strings.TrimSpace(onoffTeam) == "" {
		return fmt.Errorf("--team is required")
	}
	if len(onoffPlayers) == 0 {
		return fmt.Errorf("--players is required")
	}

	events, err := csvio.ReadEventsFile(onoffPath)
	if err != nil {
		return fmt.Errorf("failed to read play-by-play file: %w", err)
	}
	if !filterIsAll(onoffOpponents) {
		events, err = onoff.FilterOpponents(events, onoffOpponents)
		if err != nil {
			return err
		}
	}

	report, err := onoff.Compute(events, onoffTeam, onoffPlayers)
	if err != nil {
		return fmt.Errorf("on/off aggregation failed: %w", err)
	}

	if err := onoff.Render(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	path := filepath.Join(onoffOut, csvio.ReportFileName(onoffTeam, time.Now()))
	if err := csvio.WriteReportFile(path, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nWrote %s\n", path)
	return nil
}

// filterIsAll reports whether the opponent filter selects every game.
func filterIsAll(opponents []string) bool {
	if len(opponents) == 0 {
		return true
	}
	for _, o := range opponents {
		if strings.EqualFold(o, "all") {
			return true
		}
	}
	return false
}

func newTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List the NCAA team directory for a season",
		Args:  cobra.NoArgs,
		RunE:  runTeamsCmd,
	}
	cmd.Flags().StringVar(&teamsSport, "sport", defaultSport, "sport code (MBB or WBB)")
	cmd.Flags().IntVar(&teamsSeason, "season", defaultSeason, "academic year (2025 = 2024-25)")
	cmd.Flags().IntVar(&teamsDivision, "division", defaultDivision, "NCAA division (1-3)")
	cmd.Flags().BoolVar(&teamsBrowser, "browser", false, "render pages in headless Chrome when plain requests are rejected")
	cmd.Flags().IntVar(&teamsDelay, "delay", defaultDelay, "seconds between page requests")
	return cmd
}

func runTeamsCmd(cmd *cobra.Command, _ []string) error {
	client := newClient(teamsBrowser, teamsDelay)
	defer client.Close()

	ctx, cancel := signalContext()
	defer cancel()

	doc, err := client.FetchDocument(ctx, ncaa.TeamDirectoryPath(teamsSeason, teamsSport, teamsDivision))
	if err != nil {
		return fmt.Errorf("failed to fetch team directory: %w", err)
	}
	teams := ncaa.ParseTeamDirectory(doc)
	if len(teams) == 0 {
		return fmt.Errorf("no teams found (season %d, %s, division %d)", teamsSeason, teamsSport, teamsDivision)
	}

	names := make([]string, 0, len(teams))
	for name := range teams {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only JSON API",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&serveBrowser, "browser", false, "render pages in headless Chrome when plain requests are rejected")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "addr", &serveAddr, fileCfg.Serve.Addr)

	client := newClient(serveBrowser, defaultDelay)
	defer client.Close()

	server := rest.NewServer(serveAddr, client)
	go func() {
		log.Printf("[rest-api] listening on %s", serveAddr)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Printf("[rest-api] server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the config file and open it in $EDITOR",
		Args:  cobra.NoArgs,
		RunE:  runConfigInitCmd,
	})
	return configCmd
}

func runConfigInitCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// newClient builds the configured site client.
func newClient(browser bool, delaySeconds int) *ncaa.Client {
	var client *ncaa.Client
	if browser {
		client = ncaa.NewBrowserClient()
	} else {
		client = ncaa.NewClient()
	}
	client.SetInterval(time.Duration(delaySeconds) * time.Second)
	return client
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			log.Println("Interrupt received, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# ncaapbp configuration
# Uncomment a value to enable it. CLI flags override config values.

[collect]
# team = %q         # Team name as listed in the NCAA directory
# sport = %q              # Sport code (MBB or WBB)
# season = %d             # Academic year (2025 = 2024-25)
# division = %d              # NCAA division (1-3)
# browser = false          # Render pages in headless Chrome on rejection
# out-dir = "."            # Output directory for CSV files

[onoff]
# team = %q         # Default team for on/off analysis
# out-dir = "."            # Output directory for report CSVs

[serve]
# addr = %q            # Listen address for the JSON API
`,
		defaultTeam,
		defaultSport,
		defaultSeason,
		defaultDivision,
		defaultTeam,
		defaultAddr,
	)
}
