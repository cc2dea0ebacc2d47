package commands

import (
	"database/sql"
	"net/url"
	"os"
	"time"

	"restaurant-locator/lib/configutil"
	"restaurant-locator/lib/rategate"
	"restaurant-locator/lib/scrapers/blog"
	"restaurant-locator/lib/search"
	"restaurant-locator/lib/serviceutil"
	"restaurant-locator/lib/sqliteutil"
	"restaurant-locator/services/locator"
	"restaurant-locator/services/locator/db"

	_ "modernc.org/sqlite"
)

type Config struct {
	// the blog the listing's articles live on, e.g.
	// "https://example.com"
	BlogBaseUrl string `json:"blogBaseUrl"`
	// host used in "site:" search queries, derived from BlogBaseUrl
	// when empty
	SearchSite string `json:"searchSite"`
	DbPath     string `json:"dbPath"`
	ExportDir  string `json:"exportDir"`
	// cooldown seconds between search engine calls
	SearchPeriod int `json:"searchPeriod"`
	// cooldown seconds between wp-json calls
	FetchPeriod int `json:"fetchPeriod"`
	// type the search result urls yourself instead of scraping a
	// search engine
	ManualSearch     bool `json:"manualSearch"`
	FillDescriptions bool `json:"fillDescriptions"`
	// dump raw request/response pairs here when set
	DebugDir  string             `json:"debugDir"`
	LinkRules *locator.LinkRules `json:"linkRules"`
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if cfg.DbPath == "" {
		cfg.DbPath = "locator.db"
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	if cfg.SearchPeriod == 0 {
		cfg.SearchPeriod = 55
	}
	if cfg.FetchPeriod == 0 {
		cfg.FetchPeriod = 37
	}
	return cfg
}

func openService(cfg Config) (locator.Service, *sql.DB) {
	database, err := sqliteutil.OpenDB(db.Schema, cfg.DbPath)
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}

	var provider search.Provider
	if cfg.ManualSearch {
		provider = search.NewManual(os.Stdin, os.Stdout)
	} else {
		provider, err = search.NewDuckDuckGo()
		if err != nil {
			serviceutil.Fatal("failed to initialize search provider", err)
		}
	}

	blogClient, err := blog.NewClient(blog.ClientOptions{
		BaseUrl:  cfg.BlogBaseUrl,
		DebugDir: cfg.DebugDir,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize blog client", err)
	}

	site := cfg.SearchSite
	if site == "" {
		site = hostOf(cfg.BlogBaseUrl)
	}

	opts := locator.Options{
		Search:           provider,
		Blog:             blogClient,
		SearchSite:       site,
		SearchGate:       searchGateFor(cfg),
		FetchGate:        rategate.New("blog", time.Duration(cfg.FetchPeriod)*time.Second),
		FillDescriptions: cfg.FillDescriptions,
	}
	if cfg.LinkRules != nil {
		opts.Rules = *cfg.LinkRules
	}

	return locator.NewService(database, opts), database
}

// searchGateFor returns the cooldown gate between search calls, or nil
// in manual mode. An operator typing urls by hand is not a scraper and
// should not wait out the scraping cooldown between prompts.
func searchGateFor(cfg Config) *rategate.Gate {
	if cfg.ManualSearch {
		return nil
	}
	return rategate.New("search", time.Duration(cfg.SearchPeriod)*time.Second)
}

func hostOf(rawUrl string) string {
	parsed, err := url.Parse(rawUrl)
	if err != nil || parsed.Host == "" {
		return rawUrl
	}
	return parsed.Hostname()
}

// openStore opens the service without network collaborators, enough
// for parse/list/export.
func openStore(cfg Config) (locator.Service, *sql.DB) {
	database, err := sqliteutil.OpenDB(db.Schema, cfg.DbPath)
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}
	return locator.NewService(database, locator.Options{}), database
}
