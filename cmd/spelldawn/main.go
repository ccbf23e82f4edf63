package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	spelldawncmd "github.com/thurn/spelldawn/internal/cmd/spelldawn"
)

func main() {
	cfg, err := spelldawncmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SPELLDAWN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := spelldawncmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to run: %v", err)
	}
}
