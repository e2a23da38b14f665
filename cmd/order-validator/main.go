// Package main is the entry point for the order-validator CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"order-validator/internal/app"
	"order-validator/internal/directory"
	"order-validator/internal/engine"
)

// config is the CLI configuration, read from the environment.
type config struct {
	DirectoryFile    string `env:"DIRECTORY_FILE"`
	Pretty           bool   `env:"PRETTY"`
	BatchConcurrency int    `env:"BATCH_CONCURRENCY" envDefault:"4"`
}

func main() {
	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutdown requested, exiting...")
		os.Exit(0)
	}()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The built-in fixture directory serves demos and smoke tests; a host
	// supplies real customers through DIRECTORY_FILE.
	dir := directory.Fixture()
	if cfg.DirectoryFile != "" {
		loaded, err := directory.LoadFile(cfg.DirectoryFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR %v\n", err)
			os.Exit(1)
		}
		dir = loaded
	}

	machine := engine.New(dir)

	// Determine input source
	var input io.Reader
	batch := false
	if len(os.Args) > 1 {
		// File input mode: the whole batch is known up front, so orders
		// are validated concurrently.
		file, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR cannot open file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		input = file
		batch = true
	} else {
		// Interactive (stdin) mode
		input = os.Stdin
	}

	runner := app.NewRunner(machine, input, os.Stdout, cfg.Pretty)

	var err error
	if batch {
		err = runner.RunBatch(context.Background(), cfg.BatchConcurrency)
	} else {
		err = runner.Run()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR %v\n", err)
		os.Exit(1)
	}
}
