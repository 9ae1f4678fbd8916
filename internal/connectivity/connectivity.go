package connectivity

import (
	"net"
	"strings"

	"github.com/rs/zerolog/log"
)

type Transport int

const (
	TransportUnknown Transport = iota
	TransportWiFi
	TransportCellular
	TransportEthernet
)

func (t Transport) String() string {
	switch t {
	case TransportWiFi:
		return "wifi"
	case TransportCellular:
		return "cellular"
	case TransportEthernet:
		return "ethernet"
	default:
		return "unknown"
	}
}

// transportPrefixes maps interface name prefixes to transports. Longer
// prefixes are listed before shorter ones that share a start.
var transportPrefixes = []struct {
	prefix    string
	transport Transport
}{
	{"wlan", TransportWiFi},
	{"wlp", TransportWiFi},
	{"wifi", TransportWiFi},
	{"wwan", TransportCellular},
	{"rmnet", TransportCellular},
	{"ccmni", TransportCellular},
	{"pdp", TransportCellular},
	{"eth", TransportEthernet},
	{"enp", TransportEthernet},
	{"eno", TransportEthernet},
	{"ens", TransportEthernet},
	{"enx", TransportEthernet},
	{"en", TransportEthernet},
}

func Classify(name string) Transport {
	name = strings.ToLower(name)
	for _, p := range transportPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.transport
		}
	}
	return TransportUnknown
}

// Interface is the subset of an OS network interface the checker needs.
type Interface struct {
	Name    string
	Flags   net.Flags
	HasAddr bool
}

type Lister func() ([]Interface, error)

func SystemInterfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	result := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		result = append(result, Interface{
			Name:    iface.Name,
			Flags:   iface.Flags,
			HasAddr: err == nil && hasRoutableAddr(addrs),
		})
	}
	return result, nil
}

func hasRoutableAddr(addrs []net.Addr) bool {
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		if ipNet.IP.IsGlobalUnicast() || ipNet.IP.IsPrivate() {
			return true
		}
	}
	return false
}

type NetworkChecker interface {
	IsNetworkAvailable() bool
}

type Checker struct {
	list   Lister
	legacy bool
}

// NewChecker returns a checker over the system interfaces. In legacy mode any
// interface that is up counts, whatever its transport or address state.
func NewChecker(legacy bool) *Checker {
	return NewCheckerWithLister(SystemInterfaces, legacy)
}

func NewCheckerWithLister(list Lister, legacy bool) *Checker {
	return &Checker{
		list:   list,
		legacy: legacy,
	}
}

func (c *Checker) IsNetworkAvailable() bool {
	ifaces, err := c.list()
	if err != nil {
		log.Warn().Err(err).Msg("failed to list network interfaces")
		return false
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}

		if c.legacy {
			return true
		}

		if iface.Flags&net.FlagRunning == 0 || !iface.HasAddr {
			continue
		}

		switch Classify(iface.Name) {
		case TransportWiFi, TransportCellular, TransportEthernet:
			return true
		}
	}

	return false
}
