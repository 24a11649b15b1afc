package main

import (
	"context"
	"log"

	"github.com/avasiljevs/assetledger/internal/client/cli"
	"github.com/avasiljevs/assetledger/internal/client/client"
	"github.com/avasiljevs/assetledger/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	c, err := client.NewAssetLedgerClient(cfg.ServerEndpointAddr)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer c.Close()

	app := cli.NewApp(cfg, c)
	app.Run(ctx)

}
