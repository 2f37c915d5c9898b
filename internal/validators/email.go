package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address carries a resolvable
// domain before an account is created. MX is the real signal; a bare
// A/AAAA record is accepted as a fallback since plenty of campus mail
// domains lack MX entries.
func IsEmailDomainValid(email string) bool {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" || strings.Contains(domain, "@") {
		return false
	}

	if records, err := net.LookupMX(domain); err == nil && len(records) > 0 {
		return true
	}

	addrs, err := net.LookupIP(domain)
	return err == nil && len(addrs) > 0
}
