package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/toolbox/internal/cli"
	"github.com/dmitrijs2005/toolbox/internal/config"
)

func main() {

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := cli.NewApp(cfg, "groupdemo")

	if err := app.Run(context.Background(), (*cli.App).GroupDemo); err != nil {
		os.Exit(1)
	}

}
