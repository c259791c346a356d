package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ProxyHeaders lists the forwarding headers set by common reverse proxies,
// in the order they are usually trusted.
var ProxyHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// FromRequest returns the client address of r. The headers are consulted in
// order and the first one carrying a valid address wins; X-Forwarded-For style
// lists yield their first valid entry. RemoteAddr is the fallback. The result
// is "" when no valid address is found.
func FromRequest(r *http.Request, headers ...string) string {
	for _, name := range headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := normalize(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
