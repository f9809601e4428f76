package app

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Module wires the storefront facade, the command loop, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStorefrontFacade,
		newSession,
	),
	fx.Invoke(registerLifecycle),
)

type sessionParams struct {
	fx.In

	Facade *StorefrontFacade
	Input  *bufio.Reader
	Logger *slog.Logger
}

func newSession(p sessionParams) *Session {
	return NewSession(p.Facade, p.Input, os.Stdout, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Session    *Session
}

func registerLifecycle(p lifecycleParams) {
	sessionCtx, cancel := context.WithCancel(context.Background())

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting shopfront")
			go func() {
				p.Session.Run(sessionCtx)
				_ = p.Shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			p.Logger.Info("shopfront stopped")
			return nil
		},
	})
}
