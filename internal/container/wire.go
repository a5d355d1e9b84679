//go:build wireinject
// +build wireinject

package container

import (
	"context"

	"github.com/google/wire"

	"github.com/narwhalmedia/catalog/pkg/config"
)

// InitializeApp creates the catalog service with all dependencies
func InitializeApp(ctx context.Context, cfg *config.CatalogConfig) (*App, func(), error) {
	wire.Build(
		InfrastructureSet,
		ServiceSet,
		HTTPSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
