// gotdlib - Typed Go bindings for the TDLib JSON interface.
// Copyright (C) 2026 Sumner Evans
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command tdrelay exposes the TDLib instances of this machine over websocket.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
	"go.mau.fi/zerozap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go.mau.fi/gotdlib/pkg/relay"
	"go.mau.fi/gotdlib/pkg/tdlib/native"
)

func main() {
	configPath := flag.StringP("config", "c", "", "Path to the config file, the example config is used if empty")
	generateConfig := flag.BoolP("generate-example-config", "e", false, "Print the example config and exit")
	flag.Parse()

	if *generateConfig {
		fmt.Print(ExampleConfig)
		return
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(11)
	}
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("Relay failed")
	}
}

func run(ctx context.Context, cfg *Config) error {
	transport, err := native.New(native.Options{
		Logger:       zap.New(zerozap.New(log.Logger)).Named("tdjson"),
		LogVerbosity: cfg.TDLibVerbosity,
	})
	if err != nil {
		return errors.Wrap(err, "load libtdjson")
	}
	defer transport.Close()

	srv := relay.NewServer(transport, relay.Options{
		Logger:         &log.Logger,
		ReceiveTimeout: cfg.ReceiveTimeout,
		SendQueue:      cfg.SendQueue,
		CheckOrigin:    cfg.CheckOrigin,
	})
	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return errors.Wrap(err, "receive loop")
		}
		return nil
	})
	eg.Go(func() error {
		log.Info().Str("address", cfg.Listen).Msg("Listening")
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
