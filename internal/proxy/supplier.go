package proxy

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"
)

const (
	probeTimeout     = 5 * time.Second
	probeConcurrency = 16
)

// ProxySupplier hands out proxy URLs in round-robin order.
type ProxySupplier interface {
	// Get returns the next proxy, or "" when the pool is empty.
	Get() string
	Len() int
}

type proxySupplier struct {
	proxies []string
	current int
	mutex   sync.Mutex
}

// NewStaticSupplier uses the given proxies without probing them.
func NewStaticSupplier(proxies []string) ProxySupplier {
	return &proxySupplier{proxies: append([]string(nil), proxies...)}
}

// NewProxySupplier probes every proxy against the catalog endpoint and keeps the reachable ones
// in their configured order. Any HTTP response counts as reachable.
func NewProxySupplier(ctx context.Context, proxies []string, endpoint string) (ProxySupplier, error) {
	if len(proxies) == 0 {
		return &proxySupplier{}, nil
	}

	log.Infof("🔄 Probing %d proxies against %s", len(proxies), endpoint)

	reachable := make([]bool, len(proxies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)

	for i, proxyURL := range proxies {
		g.Go(func() error {
			reachable[i] = isProxyReachable(gctx, proxyURL, endpoint)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	valid := make([]string, 0, len(proxies))
	for i, proxyURL := range proxies {
		if reachable[i] {
			valid = append(valid, proxyURL)
		}
	}

	log.Infof("✅ Proxy pool ready with %d of %d proxies", len(valid), len(proxies))

	return &proxySupplier{proxies: valid}, nil
}

func (p *proxySupplier) Get() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(p.proxies) == 0 {
		return ""
	}

	proxy := p.proxies[p.current]
	p.current = (p.current + 1) % len(p.proxies)

	return proxy
}

func (p *proxySupplier) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.proxies)
}

func isProxyReachable(ctx context.Context, proxyURL, endpoint string) bool {
	client := resty.New().
		SetTimeout(probeTimeout).
		SetProxy(proxyURL)

	resp, err := client.R().
		SetContext(ctx).
		Head(endpoint)

	if err != nil {
		log.Infof("❌ Proxy %s unreachable: %v", proxyURL, err)
		return false
	}

	log.Debugf("✅ Proxy %s answered with %s", proxyURL, resp.Status())
	return true
}
