// Package nic discovers line rate and MAC address for a network
// interface, used to seed the pacer and the throughput search ceiling.
package nic

import (
	"fmt"
	"net"

	"github.com/safchain/ethtool"
)

// Info is what the rest of the tool needs to know about a physical or
// virtual interface before it can pace traffic on it.
type Info struct {
	MAC         net.HardwareAddr
	LinkRateBps uint64
}

// Discover reads iface's MAC address and, when autoDetect is true, its
// negotiated link speed via ethtool. When autoDetect is false or ethtool
// discovery fails, fallbackBps is used instead (the caller's configured
// line rate).
func Discover(iface string, autoDetect bool, fallbackBps uint64) (Info, error) {
	ifi, err := net.InterfaceByName(iface)
	if err != nil {
		return Info{}, fmt.Errorf("nic: lookup %s: %w", iface, err)
	}

	rate := fallbackBps
	if autoDetect {
		if speed, err := linkSpeedBps(iface); err == nil && speed > 0 {
			rate = speed
		}
	}

	return Info{MAC: ifi.HardwareAddr, LinkRateBps: rate}, nil
}

// linkSpeedBps reads the interface's negotiated link speed in bits/sec via
// ethtool. ethtool reports speed in Mb/s.
func linkSpeedBps(iface string) (uint64, error) {
	eth, err := ethtool.NewEthtool()
	if err != nil {
		return 0, fmt.Errorf("nic: open ethtool: %w", err)
	}
	defer eth.Close()

	speedMbps, err := eth.CmdGet(&ethtool.EthtoolCmd{}, iface)
	if err != nil {
		return 0, fmt.Errorf("nic: ethtool get %s: %w", iface, err)
	}

	if speedMbps == 0 || speedMbps == 0xffffffff {
		return 0, fmt.Errorf("nic: %s reports no negotiated speed", iface)
	}
	return uint64(speedMbps) * 1_000_000, nil
}
