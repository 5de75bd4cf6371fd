// Package main is the entry point for the bloglist TUI application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/bloglist/bloglist-tui/internal/api"
	"github.com/bloglist/bloglist-tui/internal/config"
	"github.com/bloglist/bloglist-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `bloglist-tui - Terminal client for the bloglist service

USAGE:
    bloglist-tui [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --url URL       Backend base URL (overrides config and BLOGLIST_API_URL)
    --debug         Write a debug log to the data directory
    --logout        Forget the stored session and exit

CONFIGURATION:
    Config file: ~/.config/bloglist-tui/config.yaml
    Environment: BLOGLIST_API_URL, BLOGLIST_DEBUG (also read from .env)

KEYBINDINGS:
    Login:
        Tab/Shift+Tab   Switch field
        Enter           Next field / log in

    Blogs:
        j/k         Move down/up
        gg/G        Go to top/bottom
        Enter/Space Expand or collapse a blog
        l           Like the expanded blog
        d           Delete your own expanded blog
        y           Copy the blog url
        n           New blog
        r           Refresh
        o           Log out
        ?           Show help
        q           Quit
`

const configTemplate = `# Bloglist TUI Configuration
# Location: ~/.config/bloglist-tui/config.yaml

api:
  # Where the bloglist backend listens
  base_url: "http://localhost:3003"
  timeout_seconds: 30
  # Client-side request throttle, 0 disables it
  requests_per_second: 0

ui:
  # How long status messages stay visible
  notification_seconds: 5
  # Mirror status messages as desktop notifications
  desktop_notifications: false
  # Write a debug log to ~/.local/share/bloglist-tui/debug.log
  debug: false
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		logout      bool
		debug       bool
		baseURL     string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&logout, "logout", false, "Forget the stored session")
	flag.BoolVar(&debug, "debug", false, "Write a debug log")
	flag.StringVar(&baseURL, "url", "", "Backend base URL")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("bloglist-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if debug {
		cfg.UI.Debug = true
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}
	store := config.NewSessionStore(dataDir)

	if logout {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	}

	return runApp(cfg, store)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config, store config.SessionStore) error {
	logger, closeLog, err := config.NewLogger(cfg.UI.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	client := api.NewClient(cfg.API.BaseURL)
	client.SetTimeout(cfg.Timeout())
	client.SetRateLimit(cfg.API.RequestsPerSecond)
	client.SetLogger(logger)

	logger.Info("starting", "version", version, "base_url", client.BaseURL())

	app := tui.NewApp(client, cfg, store, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
