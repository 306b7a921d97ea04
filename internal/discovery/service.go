package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Service represents a record server found on the network
type Service struct {
	// Instance is the advertised instance name (e.g., "fieldbuilder-myhost")
	Instance string

	// Hostname is the mDNS hostname (e.g., "myhost.local.")
	Hostname string

	// IP is the preferred address (IPv4 when available)
	IP string

	// Port is the HTTP port
	Port int

	// Metadata contains the TXT record data ("path", "version")
	Metadata map[string]string

	// DiscoveredAt is when the service was seen
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the service
func (s *Service) String() string {
	return fmt.Sprintf("Record server %s (%s) at %s", s.Instance, s.Hostname, s.Address())
}

// Address returns host:port, bracketing IPv6 addresses
func (s *Service) Address() string {
	return net.JoinHostPort(s.IP, strconv.Itoa(s.Port))
}

// BaseURL returns the HTTP base URL of the record server
func (s *Service) BaseURL() string {
	return "http://" + s.Address()
}
