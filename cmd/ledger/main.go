package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/bootstrap"
)

const (
	networkProtocol = "tcp"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	cfg, err := bootstrap.LoadLedgerConfig()
	if err != nil {
		defaultLogger.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		defaultLogger.Error("failed to listen", "port", cfg.HttpPort, "error", err.Error())
		os.Exit(1)
	}

	defaultLogger.Info("starting ledger",
		"database", cfg.DbSettings.String(),
		"administrator", string(cfg.Administrator),
		"redeem_policy", string(cfg.RedeemPolicy),
	)

	app := bootstrap.NewLedgerApp(cfg, defaultLogger)
	if err := app.Run(mainCtx, lis); err != nil {
		defaultLogger.Error("ledger stopped with error", "error", err.Error())
		os.Exit(1)
	}
}
