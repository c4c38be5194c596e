// Package main is the entry point for the go2web client.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/go2web/go2web/internal/auth"
	"github.com/go2web/go2web/internal/client"
	"github.com/go2web/go2web/internal/config"
	"github.com/go2web/go2web/internal/renderer"
	"github.com/go2web/go2web/internal/report"
	"github.com/go2web/go2web/internal/search"
	"github.com/go2web/go2web/internal/storage"
)

var cli struct {
	URL    string `short:"u" help:"Make an HTTP request to the specified URL"`
	Search string `short:"s" help:"Search term to look up"`
	Link   *int   `short:"l" help:"Open a link from the last results by its number"`
	Export string `type:"path" help:"Export the last results to a .csv, .xlsx or .json file"`

	JSON bool `help:"Request JSON content (Accept: application/json)" xor:"accept"`
	HTML bool `help:"Request HTML content (Accept: text/html)" xor:"accept"`

	NoFollow     bool          `help:"Do not follow redirects"`
	MaxRedirects int           `default:"5" help:"Maximum redirect hops to follow"`
	Timeout      time.Duration `default:"30s" help:"Socket deadline for connect+send+receive (0 = no timeout)"`

	Basic  string `placeholder:"USER:PASS" help:"Send HTTP basic auth credentials"`
	Bearer string `placeholder:"TOKEN" help:"Send a bearer token"`

	CachePath string `type:"path" help:"Path of the cache database (default ~/.go2web/go2web.db)"`
	NoCache   bool   `help:"Bypass the response cache"`
	Verbose   bool   `short:"v" help:"Enable debug logging"`
}

func main() {
	cliCtx := kong.Parse(&cli,
		kong.Name("go2web"),
		kong.Description("Minimal web client speaking raw HTTP/1.1 over sockets."),
		kong.UsageOnError(),
	)

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cfg := config.DefaultConfig()
	cfg.Timeout = cli.Timeout
	cfg.MaxRedirects = cli.MaxRedirects
	cfg.FollowRedirects = !cli.NoFollow
	if cli.Basic != "" {
		user, pass, found := strings.Cut(cli.Basic, ":")
		if !found {
			cliCtx.Fatalf("--basic expects USER:PASS")
		}
		cfg.AuthType = config.AuthBasic
		cfg.Username = user
		cfg.Password = pass
	} else if cli.Bearer != "" {
		cfg.AuthType = config.AuthBearer
		cfg.Token = cli.Bearer
	}
	if err := cfg.Validate(); err != nil {
		cliCtx.Fatalf("invalid configuration: %s", err)
	}

	db, err := openDatabase(cli.CachePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open cache database")
	}
	defer db.Close()

	var cache client.Cache = db
	if cli.NoCache {
		cache = nil
	}
	httpClient := client.New(cfg, cache, log)

	app := &application{
		client:  httpClient,
		config:  cfg,
		auth:    auth.NewAuthenticator(cfg),
		results: db,
		log:     log,
	}

	ctx := context.Background()
	switch {
	case cli.URL != "":
		err = app.fetch(ctx, cli.URL)
	case cli.Search != "":
		err = app.search(ctx, cli.Search)
	case cli.Link != nil:
		err = app.openLink(ctx, *cli.Link)
	case cli.Export != "":
		err = app.export(cli.Export)
	default:
		cliCtx.PrintUsage(false)
		return
	}

	if err != nil {
		log.Error().Err(err).Msg("operation failed")
		os.Exit(1)
	}
}

// openDatabase opens (and initializes) the sqlite database holding the
// response cache and the last-results slot.
func openDatabase(path string) (*storage.Database, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir := filepath.Join(home, ".go2web")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
		path = filepath.Join(dir, "go2web.db")
	}

	db, err := storage.NewDatabase(path)
	if err != nil {
		return nil, err
	}
	if err := db.Initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type application struct {
	client  *client.Client
	config  *config.Config
	auth    *auth.Authenticator
	results storage.ResultStore
	log     zerolog.Logger
}

// accept returns the negotiated Accept value, empty for no preference.
func (a *application) accept() string {
	switch {
	case cli.JSON:
		return "application/json"
	case cli.HTML:
		return "text/html"
	default:
		return ""
	}
}

// fetch requests url, renders the response, and persists any extracted links
// as the new last results.
func (a *application) fetch(ctx context.Context, url string) error {
	req := a.client.NewRequest(url)
	req.Accept = a.accept()
	req.Headers = make(map[string]string)
	if err := a.auth.Apply(req.Headers); err != nil {
		return err
	}

	resp, err := a.client.Do(ctx, req)
	if err != nil {
		return err
	}
	if resp.FromCache {
		fmt.Println("Using cached response")
	}

	if resp.IsJSON() {
		fmt.Println(renderer.RenderJSON(resp.Body))
		return nil
	}

	page, err := renderer.RenderHTML(resp.Body)
	if err != nil {
		return err
	}
	fmt.Println(page.Output)

	if len(page.Links) > 0 {
		links := make([]storage.ResultLink, len(page.Links))
		for i, link := range page.Links {
			links[i] = storage.ResultLink{Position: i + 1, Label: link.Text, URL: link.Href}
		}
		if err := a.results.SaveResults(links); err != nil {
			a.log.Warn().Err(err).Msg("failed to save links")
		} else {
			fmt.Println("\nYou can open any of these links using: go2web --link <number>")
		}
	}

	return nil
}

// search runs a search query, prints the results, and persists them as the
// new last results.
func (a *application) search(ctx context.Context, term string) error {
	engine := search.NewEngine(a.client, a.log)
	results, err := engine.Search(ctx, term)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Search Results for %q ===\n\n", term)
	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	links := make([]storage.ResultLink, len(results))
	for i, result := range results {
		fmt.Printf("%d. %s\n   %s\n\n", i+1, result.Title, result.URL)
		links[i] = storage.ResultLink{Position: i + 1, Label: result.Title, URL: result.URL}
	}

	if err := a.results.SaveResults(links); err != nil {
		a.log.Warn().Err(err).Msg("failed to save results")
	} else {
		fmt.Println("You can open any of these results using: go2web --link <number>")
	}

	return nil
}

// openLink re-fetches entry number from the persisted last results.
func (a *application) openLink(ctx context.Context, number int) error {
	links, err := a.results.LoadResults()
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return fmt.Errorf("no previous results found; fetch a page or search first")
	}
	if number < 1 || number > len(links) {
		return fmt.Errorf("invalid link number %d: choose between 1 and %d", number, len(links))
	}

	link := links[number-1]
	fmt.Printf("Opening: %s - %s\n", link.Label, link.URL)
	return a.fetch(ctx, link.URL)
}

// export writes the persisted last results to a file.
func (a *application) export(path string) error {
	links, err := a.results.LoadResults()
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return fmt.Errorf("no previous results to export; fetch a page or search first")
	}

	if err := report.Export(path, links); err != nil {
		return err
	}
	fmt.Printf("Exported %d results to %s\n", len(links), path)
	return nil
}
