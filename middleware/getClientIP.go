package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// TrustedProxies lists the peers whose forwarding headers are believed.
type TrustedProxies []*net.IPNet

// ParseTrustedProxies reads a comma-separated list of IPs or CIDRs.
// Entries that parse as neither are skipped.
func ParseTrustedProxies(list string) TrustedProxies {
	var out TrustedProxies
	for _, raw := range strings.Split(list, ",") {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil {
				bits := 128
				if ip.To4() != nil {
					ip, bits = ip.To4(), 32
				}
				out = append(out, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			}
			continue
		}
		if _, n, err := net.ParseCIDR(entry); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func (t TrustedProxies) contains(ip net.IP) bool {
	for _, n := range t {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func remoteHost(c *gin.Context) string {
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// getClientIP returns the peer address, or the first forwarded address when
// the peer is a trusted proxy.
func getClientIP(c *gin.Context, trusted TrustedProxies) string {
	peer := remoteHost(c)
	ip := net.ParseIP(peer)
	if ip == nil || !trusted.contains(ip) {
		return peer
	}

	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	return peer
}
