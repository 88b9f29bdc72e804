package probe

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"
)

// DNS classes reported by Diagnose.
const (
	DNSResolves    = "RESOLVES"
	DNSNoARecord   = "NO_A_RECORD"
	DNSNXDomain    = "NXDOMAIN"
	DNSUnavailable = "SERVFAIL_or_TIMEOUT"
	DNSInvalidName = "INVALID_NAME"
	DNSIPLiteral   = "IP_LITERAL"
)

// DNSStatus explains why a host may be unreachable. It never affects a
// Verdict; it only enriches logs.
type DNSStatus struct {
	Host          string
	Class         string
	IPs           []net.IP
	ResolverError string
}

var dnsTimeout = 3 * time.Second

var resolver = &net.Resolver{} // OS resolver

// Diagnose resolves the host of target and classifies the outcome.
func Diagnose(ctx context.Context, target string) DNSStatus {
	s := DNSStatus{Host: extractHost(target)}
	if s.Host == "" || strings.Contains(s.Host, "://") {
		s.Class = DNSInvalidName
		return s
	}
	if ip := net.ParseIP(s.Host); ip != nil {
		s.Class = DNSIPLiteral
		s.IPs = []net.IP{ip}
		return s
	}

	ctx, cancel := context.WithTimeout(ctx, dnsTimeout)
	defer cancel()

	ips, err := resolver.LookupIP(ctx, "ip", s.Host)
	if err == nil && len(ips) > 0 {
		s.Class = DNSResolves
		s.IPs = ips
		return s
	}
	if err == nil {
		s.Class = DNSNoARecord
		return s
	}

	s.ResolverError = err.Error()
	s.Class = DNSUnavailable
	var de *net.DNSError
	if errors.As(err, &de) && de.IsNotFound {
		s.Class = DNSNXDomain
		// the zone may exist without an address record
		if ns, err := resolver.LookupNS(ctx, s.Host); err == nil && len(ns) > 0 {
			s.Class = DNSNoARecord
		}
	}
	return s
}

func extractHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return strings.TrimSpace(raw)
	}
	return u.Hostname()
}
