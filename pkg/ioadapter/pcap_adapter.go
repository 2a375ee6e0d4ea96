package ioadapter

import (
	"net"
	"time"

	"github.com/gopacket/gopacket/pcap"
)

// snaplen is large enough to capture any standard or jumbo frame this tool
// constructs (up to 9000 bytes payload plus headers).
const snaplen = 9100

// Pcap is a live adapter built on gopacket/pcap: it binds to a network
// interface in promiscuous mode and sends/receives raw Ethernet frames.
type Pcap struct {
	handle *pcap.Handle
	mac    net.HardwareAddr
}

// NewPcap opens iface for live capture and transmit. timeout bounds how
// long ReadPacketData may block internally; RecvBatch always treats it as
// non-blocking by using pcap's packet-available semantics within that
// short timeout.
func NewPcap(iface string, timeout time.Duration) (*Pcap, error) {
	handle, err := pcap.OpenLive(iface, snaplen, true, timeout)
	if err != nil {
		return nil, err
	}

	mac, err := interfaceMAC(iface)
	if err != nil {
		handle.Close()
		return nil, err
	}

	return &Pcap{handle: handle, mac: mac}, nil
}

func interfaceMAC(name string) (net.HardwareAddr, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return nil, err
	}
	return ifi.HardwareAddr, nil
}

// SendBatch writes each frame in turn via WritePacketData, stopping at the
// first failure; short sends are permitted and reported via the returned
// count.
func (p *Pcap) SendBatch(packets [][]byte) (int, error) {
	sent := 0
	for _, pkt := range packets {
		if err := p.handle.WritePacketData(pkt); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

// RecvBatch drains up to max packets already captured by the handle's
// ring buffer without blocking beyond the handle's configured read
// timeout.
func (p *Pcap) RecvBatch(max int) ([]Packet, error) {
	out := make([]Packet, 0, max)
	for len(out) < max {
		data, ci, err := p.handle.ZeroCopyReadPacketData()
		if err == pcap.NextErrorTimeoutExpired {
			break
		}
		if err != nil {
			if len(out) > 0 {
				return out, nil
			}
			return nil, err
		}
		cp := make([]byte, len(data))
		copy(cp, data)
		out = append(out, Packet{Data: cp, Timestamp: ci.Timestamp})
	}
	return out, nil
}

// MAC returns the bound interface's hardware address.
func (p *Pcap) MAC() net.HardwareAddr { return p.mac }

// Close releases the capture handle.
func (p *Pcap) Close() error {
	p.handle.Close()
	return nil
}
