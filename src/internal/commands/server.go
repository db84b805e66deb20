package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksimkurb/ioc-diff/src/internal/api"
	"github.com/maksimkurb/ioc-diff/src/internal/config"
	"github.com/maksimkurb/ioc-diff/src/internal/log"
)

// ServerCommand implements the server command for running the HTTP API server.
type ServerCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	listenAddr string
}

// CreateServerCommand creates a new server command.
func CreateServerCommand() *ServerCommand {
	c := &ServerCommand{
		fs: flag.NewFlagSet("server", flag.ExitOnError),
	}
	c.fs.StringVar(&c.listenAddr, "listen", "", "Address to bind the HTTP server (default: from config, "+config.DefaultListenAddr+")")
	return c
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return c.fs.Name()
}

// Init initializes the server command with arguments.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	if c.listenAddr != "" {
		cfg.Server.ListenAddr = c.listenAddr
	}
	c.cfg = cfg

	return nil
}

// Run starts the HTTP API server and blocks until it fails or a signal arrives.
func (c *ServerCommand) Run() error {
	server, err := api.NewServer(c.cfg, c.ctx.Version)
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}

	log.Infof("Access restricted to: %v (and IPv6 loopback)", c.cfg.Server.AllowedClients)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
