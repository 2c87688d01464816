package fetch

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	"golang.org/x/net/http2"
)

// newTransport builds the session transport. The default is a clone of
// http.DefaultTransport; with EnableH2C the session speaks cleartext
// HTTP/2 instead.
func newTransport(cfg Config) http.RoundTripper {
	if cfg.EnableH2C {
		return &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return (&net.Dialer{}).DialContext(ctx, network, addr)
			},
		}
	}
	return http.DefaultTransport.(*http.Transport).Clone()
}
