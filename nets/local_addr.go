package nets

import (
	"net"
	"net/netip"
)

// IsLocalAddr reports whether addr (host or host:port) resolves to a loopback or private address.
type IsLocalAddr func(addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if host == "" {
			// listening on all interfaces
			return false, nil
		}

		if ip, err := netip.ParseAddr(host); err == nil {
			return isLocalIP(net.IP(ip.Unmap().AsSlice())), nil
		}

		ips, err := net.LookupIP(host)
		if err != nil {
			// unresolvable hosts are treated as remote
			return false, nil
		}
		for _, ip := range ips {
			if isLocalIP(ip) {
				return true, nil
			}
		}
		return false, nil
	}
}

func isLocalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate()
}
