package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"inventory/pkg/common/config"
	"inventory/pkg/common/logging"
	appservice "inventory/pkg/inventory/application/service"
	"inventory/pkg/inventory/domain/service"
	"inventory/pkg/inventory/infrastructure/console"
	"inventory/pkg/inventory/infrastructure/dispatcher"
	"inventory/pkg/inventory/infrastructure/index"
	"inventory/pkg/inventory/infrastructure/transport"
	"inventory/pkg/inventory/infrastructure/txlog"
)

const appID = "inventory"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.WithError(err).Fatal("inventory stopped with error")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   appID,
		Usage:  "in-memory inventory tracker",
		Action: runShell,
		Commands: []*cli.Command{
			{
				Name:   "shell",
				Usage:  "interactive inventory menu",
				Action: runShell,
			},
			{
				Name:  "serve",
				Usage: "serve the inventory over an HTTP JSON API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "address",
						Usage: "listen address, overrides INVENTORY_HTTP_ADDRESS",
					},
				},
				Action: runServe,
			},
		},
	}
}

func newInventoryService() service.InventoryService {
	return service.NewInventoryService(
		index.New(),
		txlog.New(),
		dispatcher.NewLogDispatcher(log.StandardLogger()),
	)
}

func setup() (*config.Config, func(), error) {
	c, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	closer, err := logging.Setup(c)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = closer.Close() }, nil
}

func runShell(ctx *cli.Context) error {
	_, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	err = console.New(os.Stdin, os.Stdout, newInventoryService()).Run(ctx.Context)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runServe(ctx *cli.Context) error {
	c, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	address := c.HTTPAddress
	if ctx.IsSet("address") {
		address = ctx.String("address")
	}

	inventory := appservice.NewInventory(newInventoryService())
	srv := &http.Server{Addr: address, Handler: transport.Router(inventory)}

	g, gctx := errgroup.WithContext(ctx.Context)
	g.Go(func() error {
		log.WithFields(log.Fields{"address": address}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
