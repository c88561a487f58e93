package network

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
	"golang.org/x/time/rate"
)

// DefaultQPS is the upstream request rate used when none is configured.
const DefaultQPS = 2

// ClientFactory creates throttled, proxy-aware HTTP clients for upstream notice sources.
type ClientFactory struct {
	transport *http.Transport
	userAgent string
	limiter   *rate.Limiter
}

// NewClientFactory builds the shared upstream transport. proxyURL may be
// empty, http(s)://host:port or socks5://[user:pass@]host:port.
func NewClientFactory(proxyURL string, qps int, userAgent string) (*ClientFactory, error) {
	if qps <= 0 {
		qps = DefaultQPS
	}
	transport, err := NewTransport(proxyURL)
	if err != nil {
		return nil, err
	}
	return &ClientFactory{
		transport: transport,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(qps), qps),
	}, nil
}

// NewHTTPClient creates a client whose requests wait on the shared limiter
// and go through the configured proxy.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &limitedTransport{
			base:      f.transport,
			limiter:   f.limiter,
			userAgent: f.userAgent,
		},
	}
}

type limitedTransport struct {
	base      http.RoundTripper
	limiter   *rate.Limiter
	userAgent string
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}

// ValidateProxyURL checks that proxyURL is empty or a usable http, https
// or socks5 proxy address.
func ValidateProxyURL(proxyURL string) error {
	_, err := parseProxyURL(proxyURL)
	return err
}

func parseProxyURL(proxyURL string) (*url.URL, error) {
	proxyURL = strings.TrimSpace(proxyURL)
	if proxyURL == "" {
		return nil, nil
	}
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https", "socks5", "socks5h":
	default:
		return nil, fmt.Errorf("proxy url %q: unsupported scheme %q", proxyURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("proxy url %q: missing host", proxyURL)
	}
	return parsed, nil
}

// NewTransport clones http.DefaultTransport and routes it through proxyURL.
// SOCKS proxies dial through golang.org/x/net/proxy; HTTP ones use
// http.ProxyURL.
func NewTransport(proxyURL string) (*http.Transport, error) {
	parsed, err := parseProxyURL(proxyURL)
	if err != nil {
		return nil, err
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if parsed == nil {
		return transport, nil
	}

	if strings.HasPrefix(parsed.Scheme, "socks") {
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{User: parsed.User.Username()}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("socks5 dialer: %w", err)
		}
		transport.Proxy = nil
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
		return transport, nil
	}

	transport.Proxy = http.ProxyURL(parsed)
	return transport, nil
}
