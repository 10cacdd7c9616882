package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fotolia/catalog/internal/config"
	"fotolia/catalog/internal/domain"
	"fotolia/catalog/internal/proxy"

	"github.com/kolo/xmlrpc"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const (
	methodPrefix   = "xmlrpc."
	defaultTimeout = 30 * time.Second
	userAgent      = "fotolia-catalog-go/1.0"
)

// Caller executes one remote procedure of the catalog and returns the decoded response:
// a map[string]interface{} for structs, a []interface{} for arrays, or a scalar.
// Every failure is a *domain.CommunicationError.
type Caller interface {
	Call(ctx context.Context, method string, args ...interface{}) (interface{}, error)
}

type rpcClient struct {
	rl            ratelimit.Limiter
	config        config.APIConfig
	endpoint      string
	httpClient    *resty.Client
	proxySupplier proxy.ProxySupplier

	proxyMutex sync.Mutex
}

// NewRPCClient builds the XML-RPC transport. The API key is sent as the first
// positional argument of every call.
func NewRPCClient(cfg config.APIConfig, proxySupplier proxy.ProxySupplier) (Caller, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrAPIKeyRequired
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultEndpoint
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Content-Type", "text/xml").
		SetHeader("Accept", "text/xml")

	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			log.Infof("🔗 Using initial proxy: %s", proxyURL)
		}
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &rpcClient{
		rl:            rl,
		config:        cfg,
		endpoint:      endpoint,
		httpClient:    client,
		proxySupplier: proxySupplier,
	}, nil
}

func (c *rpcClient) Call(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	params := make([]interface{}, 0, len(args)+1)
	params = append(params, c.config.APIKey)
	params = append(params, args...)

	payload, err := xmlrpc.EncodeMethodCall(methodPrefix+method, params...)
	if err != nil {
		return nil, &domain.CommunicationError{Method: method, Err: fmt.Errorf("failed to encode call: %w", err)}
	}

	c.rl.Take()

	log.Debugf("Calling %s with %d arguments", method, len(args))

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.endpoint)

	if err != nil {
		if ctx.Err() != nil {
			return nil, &domain.CommunicationError{Method: method, Err: fmt.Errorf("request cancelled: %w", ctx.Err())}
		}
		c.rotateProxy()
		return nil, &domain.CommunicationError{Method: method, Err: fmt.Errorf("failed to post call: %w", err)}
	}

	if resp.IsError() {
		return nil, &domain.CommunicationError{Method: method, Err: fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())}
	}

	return decodeResponse(method, []byte(resp.String()))
}

// rotateProxy moves later calls to the next proxy of the pool. The failed call is not retried.
func (c *rpcClient) rotateProxy() {
	if c.proxySupplier == nil {
		return
	}

	c.proxyMutex.Lock()
	defer c.proxyMutex.Unlock()

	if newProxy := c.proxySupplier.Get(); newProxy != "" {
		log.Infof("🔄 Switching to proxy %s for subsequent calls", newProxy)
		c.httpClient.SetProxy(newProxy)
	}
}

func decodeResponse(method string, body []byte) (interface{}, error) {
	response := xmlrpc.Response(body)

	if err := response.Err(); err != nil {
		var fault xmlrpc.FaultError
		if errors.As(err, &fault) {
			log.Debugf("Call %s returned fault %d: %s", method, fault.Code, fault.String)
			return nil, &domain.CommunicationError{Method: method, Code: fault.Code, Message: fault.String}
		}
		return nil, &domain.CommunicationError{Method: method, Err: fmt.Errorf("failed to decode fault: %w", err)}
	}

	var result interface{}
	if err := response.Unmarshal(&result); err != nil {
		return nil, &domain.CommunicationError{Method: method, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return result, nil
}
