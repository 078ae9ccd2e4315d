package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/connect"
)

const unknownIP = "0.0.0.0"

// forwardHeaders are read in order; the first yielding a public address wins.
var forwardHeaders = []string{"X-Forwarded-For", "X-Real-Ip"}

// Non-public IPv4 ranges netip.Addr.IsPrivate does not cover.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress stores the address the request came from, as found by ClientIP,
// in *http.Request.Context under connect.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), connect.IpAddrKey, ClientIP(r))
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP finds the address a request originated from.
//
// Proxy headers are walked right to left, skipping private and reserved addresses,
// so the address returned is the one just before the proxies.
// Without a usable header, the host of r.RemoteAddr returns, or 0.0.0.0.
func ClientIP(r *http.Request) string {
	for _, name := range forwardHeaders {
		hops := strings.Split(r.Header.Get(name), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil || !isPublic(addr) {
				continue
			}

			return addr.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		return addr.String()
	}

	return unknownIP
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
