package main

import (
	"context"
	"log"
	"os"

	"i18ncheck/internal/adapters/cli"
	"i18ncheck/internal/application"
	"i18ncheck/internal/config"
	"i18ncheck/internal/infrastructure/document"
	"i18ncheck/internal/infrastructure/i18n"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("i18ncheck: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	loader := document.NewLoader(i18n.NewMessageLoader())
	svc := application.NewCheckService(loader, cfg.Path, cfg.Languages)

	code, err := cli.Run(context.Background(), svc, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	os.Exit(code)
}
