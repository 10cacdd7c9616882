package container

import (
	"context"
	"fmt"

	"fotolia/catalog/internal/client"
	"fotolia/catalog/internal/config"
	"fotolia/catalog/internal/proxy"
	"fotolia/catalog/internal/service"
	"fotolia/catalog/internal/state"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Proxies  proxy.ProxySupplier
	Client   client.Caller
	Sessions state.SessionStore

	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	proxySupplier, err := proxy.NewProxySupplier(ctx, cfg.API.Proxies, cfg.API.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize proxy supplier: %w", err)
	}
	if len(cfg.API.Proxies) > 0 && proxySupplier.Len() == 0 {
		log.Warn("No configured proxy is reachable, connecting directly")
	}
	container.Proxies = proxySupplier

	rpcClient, err := client.NewRPCClient(cfg.API, proxySupplier)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog client: %w", err)
	}
	container.Client = rpcClient

	container.Sessions = state.NewMemorySessionStore()

	container.Service = service.NewService(rpcClient, cfg.API.LanguageOrDefault(), container.Sessions)

	log.Infof("✅ Catalog client ready for %s (%s)", cfg.API.Endpoint, cfg.API.LanguageOrDefault())

	return container, nil
}

// Close ends an open session before shutting down
func (c *Container) Close(ctx context.Context) error {
	log.Debug("Shutting down container...")

	if c.Service != nil && c.Service.LoggedIn(ctx) {
		if _, err := c.Service.Logout(ctx); err != nil {
			return fmt.Errorf("failed to log out: %w", err)
		}
	}

	log.Debug("Container shut down successfully")
	return nil
}
