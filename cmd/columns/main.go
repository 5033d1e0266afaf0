package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ljherron8/socceraction/pkg/config"
	"github.com/ljherron8/socceraction/pkg/feature"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	nbPrev := flag.Int("nb-prev", -1, "Override features.nb_prev_actions")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *nbPrev >= 0 {
		cfg.Features.NbPrevActions = *nbPrev
	}

	registry := feature.NewRegistry(cfg.Vocabulary())
	transformers, err := registry.Lookup(cfg.Features.Transformers...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\navailable: %v\n", err, registry.Names())
		os.Exit(1)
	}

	columns, err := feature.ColumnNames(transformers, cfg.Features.NbPrevActions, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve columns: %v\n", err)
		os.Exit(1)
	}
	for _, c := range columns {
		fmt.Println(c)
	}
}
