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

// Command tdcli logs in to Telegram through TDLib and prints incoming updates.
package main

import (
	"context"
	"fmt"
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

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tdlib"
	"go.mau.fi/gotdlib/pkg/tdlib/auth"
	"go.mau.fi/gotdlib/pkg/tdlib/hook"
	"go.mau.fi/gotdlib/pkg/tdlib/native"
	"go.mau.fi/gotdlib/pkg/tdlib/wstransport"
)

// Information to find out exactly which commit the program was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.StringP("config", "c", "config.yaml", "Path to the config file")
	generateConfig := flag.BoolP("generate-example-config", "e", false, "Print the example config and exit")
	version := flag.BoolP("version", "v", false, "Print the version and exit")
	flag.Parse()

	switch {
	case *version:
		fmt.Printf("tdcli %s (commit %s, built at %s)\n", Tag, Commit, BuildTime)
		return
	case *generateConfig:
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
	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Failed to run")
	}
}

func openTransport(ctx context.Context, cfg *Config, zaplog *zap.Logger) (tdlib.Transport, error) {
	if cfg.Relay != "" {
		return wstransport.Dial(ctx, cfg.Relay, wstransport.Options{Logger: zaplog.Named("relay")})
	}
	return native.New(native.Options{Logger: zaplog.Named("tdjson"), LogVerbosity: cfg.TDLibVerbosity})
}

func run(ctx context.Context, cfg *Config) error {
	zaplog := zap.New(zerozap.New(log.Logger))

	transport, err := openTransport(ctx, cfg, zaplog)
	if err != nil {
		return errors.Wrap(err, "open transport")
	}
	mux := tdlib.NewMux(transport, tdlib.MuxOptions{Logger: zaplog.Named("mux")})
	defer func() {
		if err := mux.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close TDLib")
		}
	}()

	authenticator := NewAuthenticator(cfg.TDLib.Request(), os.Stdin, os.Stdout)
	flow := auth.NewFlow(authenticator, auth.Options{Logger: zaplog.Named("auth")})

	d := tdapi.NewUpdateDispatcher()
	d.OnAuthorizationState(flow.OnUpdate)
	d.OnNewMessage(func(ctx context.Context, update *tdapi.UpdateNewMessage) error {
		fmt.Println(messageSummary(update.Message))
		return nil
	})
	d.OnChatTitle(func(ctx context.Context, update *tdapi.UpdateChatTitle) error {
		log.Info().Int64("chat_id", update.ChatID).Str("title", update.Title).Msg("Chat title changed")
		return nil
	})
	d.OnConnectionState(func(ctx context.Context, update *tdapi.UpdateConnectionState) error {
		log.Debug().Str("state", update.State.TypeName()).Msg("Connection state changed")
		return nil
	})
	d.OnFallback(func(ctx context.Context, update tdapi.UpdateClass) error {
		log.Trace().Str("type", update.TypeName()).Msg("Unhandled update")
		return nil
	})

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return mux.Run(ctx)
	})
	eg.Go(func() error {
		client, err := mux.NewClient(ctx, tdlib.Options{
			Logger:        zaplog.Named("client"),
			UpdateHandler: d,
			Middlewares: []tdlib.Middleware{
				hook.UpdateHook(d.Handle),
			},
			OnError: func(err error) {
				log.Warn().Err(err).Msg("Client error")
			},
		})
		if err != nil {
			return errors.Wrap(err, "create client")
		}
		if err := flow.Run(ctx, client.API()); err != nil {
			return errors.Wrap(err, "authorize")
		}
		self, err := client.Self(ctx)
		if err != nil {
			return errors.Wrap(err, "get self")
		}
		log.Info().Int64("user_id", self.ID).Str("name", self.FirstName).Msg("Logged in")

		select {
		case <-ctx.Done():
		case <-client.Done():
			return errors.New("TDLib instance closed")
		}
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return client.Close(closeCtx)
	})
	return eg.Wait()
}
