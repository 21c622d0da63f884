package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lamdaham/eecs489-p1/internal/config"
	"github.com/lamdaham/eecs489-p1/internal/util"
	iperfer "github.com/lamdaham/eecs489-p1/pkg"
)

func main() {
	server := flag.Bool("s", false, "Run in server mode")
	client := flag.Bool("c", false, "Run in client mode")
	host := flag.String("h", "", "Server hostname (client mode)")
	port := flag.Int("p", 0, "Port number (1024 <= port <= 65535)")
	duration := flag.Float64("t", 0, "Duration in seconds, must be > 0 (client mode)")
	configPath := flag.String("config", "", "Path to optional YAML config file")
	flag.Parse()

	opts := config.Options{
		Server:   *server,
		Client:   *client,
		Host:     *host,
		Port:     *port,
		Duration: time.Duration(*duration * float64(time.Second)),
	}

	if *configPath != "" {
		file, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		applyFile(&opts, file)
	}
	opts.SetDefaults()

	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	logger := util.NewLogger(opts.LogLevel)
	ctx := context.Background()

	var results *iperfer.Results
	var err error
	if opts.Server {
		results, err = iperfer.RunServer(ctx, iperfer.ServerConfig{
			Port:      opts.Port,
			ChunkSize: opts.ChunkSize,
			Exchanges: opts.Exchanges,
			Logger:    logger,
		})
	} else {
		results, err = iperfer.RunClient(ctx, iperfer.ClientConfig{
			Host:      opts.Host,
			Port:      opts.Port,
			Duration:  opts.Duration,
			ChunkSize: opts.ChunkSize,
			Exchanges: opts.Exchanges,
			Logger:    logger,
		})
	}
	if err != nil {
		var phaseErr *iperfer.PhaseError
		if errors.As(err, &phaseErr) {
			// Mid-protocol failure: the session produced no result but
			// the process itself ran; no summary is printed.
			os.Exit(0)
		}
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(results.Summary())
}

// applyFile fills options the command line left unset.
func applyFile(opts *config.Options, file config.File) {
	if opts.Port == 0 {
		opts.Port = file.Port
	}
	if opts.Host == "" {
		opts.Host = file.Host
	}
	if opts.Duration == 0 {
		opts.Duration = time.Duration(file.Duration * float64(time.Second))
	}
	opts.ChunkSize = file.ChunkSize
	opts.Exchanges = file.Exchanges
	if level, err := config.ParseLevel(file.LogLevel); err == nil {
		opts.LogLevel = level
	} else {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
