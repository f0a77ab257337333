package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/syncserver/internal/client/cli"
	"github.com/dmitrijs2005/syncserver/internal/client/client"
	"github.com/dmitrijs2005/syncserver/internal/client/config"
	"github.com/dmitrijs2005/syncserver/internal/client/mirror"
	"github.com/dmitrijs2005/syncserver/internal/filex"
	"github.com/dmitrijs2005/syncserver/internal/flagx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	c, err := client.New(cfg.ServerEndpointAddr, cfg.AccessToken)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer c.Close()

	if err := filex.EnsureParentDir(cfg.MirrorPath); err != nil {
		log.Fatalf("%v", err)
	}
	m, err := mirror.Open(ctx, cfg.MirrorPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer m.Close()

	app := cli.NewApp(c, m, os.Stdout, cfg.RequestTimeout)
	if err := app.Run(ctx, flagx.Positional(os.Args[1:], config.Flags)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
