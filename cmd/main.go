// Package cmd implements the CLI application driving the till.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/yatai/till"
	"github.com/yatai/till/console"
	"github.com/yatai/till/kv"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&menuCmd{},
	&addCmd{},
	&cartCmd{},
	&checkoutCmd{},
	&clearCmd{},
	&reportCmd{},
	&totalCmd{},
	&exportCmd{},
	&resetCmd{},
	&servicesCmd{},
	&openCmd{},
	&assistCmd{},
	&topicCmd{},
}

// As a CLI application the lifecycle is short lived, globals are fine.
var dataDir = flag.String("data", ".till", "Path to the till data directory")
var catalogFile = flag.String("catalog", "", "Path to a catalog JSON file (defaults to the built-in menu)")

func loadCatalog() (*till.Catalog, error) {
	if *catalogFile == "" {
		return till.DefaultCatalog(), nil
	}
	return till.LoadCatalog(*catalogFile)
}

// openTill opens the cart and ledger stores for today, migrating legacy
// UTC-keyed data before the first read.
func openTill() (*till.CartStore, *till.LedgerStore, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}
	store := kv.NewDir(*dataDir)
	local, utc := till.Today(), till.TodayUTC()
	till.MigrateLegacyKeys(store, local, utc)
	cart := till.NewCartStore(store, local, catalog)
	ledger := till.NewLedgerStore(store, local, catalog.Currency())
	return cart, ledger, nil
}

// consoleClient builds the service console client from the environment.
func consoleClient() (*console.Client, console.Config, error) {
	cfg, err := console.ParseEnv()
	if err != nil {
		return nil, cfg, err
	}
	return console.New(cfg), cfg, nil
}
