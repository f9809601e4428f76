package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/example/shopfront/internal/adapter/storeapi"
	"github.com/example/shopfront/internal/app"
	"github.com/example/shopfront/internal/config"
	"github.com/example/shopfront/internal/domain/repository"
	"github.com/example/shopfront/internal/storage/sqlite"
	"github.com/example/shopfront/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		BaseURL:             "http://localhost",
		AuthParam:           "api_key",
		StatePath:           ":memory:",
		PageSize:            8,
		AutocompleteDelay:   time.Millisecond,
		RequestTimeout:      time.Second,
		NotificationTimeout: time.Second,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&sqlite.Storage{}),
			fx.Replace(repository.KeyStore(&test.KeyStoreStub{})),
			fx.Replace(repository.CartStore(&test.CartStoreStub{})),
			fx.Replace(storeapi.Client(&test.ClientStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
