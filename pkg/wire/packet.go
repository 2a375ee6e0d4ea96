// Package wire builds and parses the benchmark test frame: a standard
// Ethernet/IPv4/UDP frame carrying a fixed payload header used to track
// sequence numbers, timestamps, and stream identity across a trial.
package wire

import (
	"encoding/binary"
	"errors"
	"net"
	"time"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
)

// Payload header layout, all multi-byte fields big-endian:
//
//	offset  size  field
//	0       7     signature
//	7       4     sequence number (u32)
//	11      8     tx timestamp, nanoseconds (u64, split hi/lo u32)
//	19      4     stream/service id (u32)
//	23      1     flags
//	24      -     padding, pad[i] = i mod 256
const (
	HeaderLen = 24
	offSig    = 0
	offSeq    = 7
	offTsHi   = 11
	offTsLo   = 15
	offStream = 19
	offFlags  = 23
)

// ethHeaderLen is the fixed Ethernet+IPv4+UDP header stack preceding the
// payload: 14 (Ethernet) + 20 (IPv4, no options) + 8 (UDP).
const ethHeaderLen = 14 + 20 + 8

// Flag bits carried in the payload header.
const (
	FlagNone            byte = 0
	FlagRequestTimestamp byte = 1 << 0
	FlagIsResponse       byte = 1 << 1
)

var (
	// ErrShortFrame is returned when a captured frame is too small to
	// contain a full Ethernet/IPv4/UDP/payload header stack.
	ErrShortFrame = errors.New("wire: frame shorter than header stack")
	// ErrBadSignature is returned when the payload signature does not
	// match the signature the Template was built with.
	ErrBadSignature = errors.New("wire: signature mismatch")
)

// Endpoint describes one side of the Ethernet/IP/UDP frame.
type Endpoint struct {
	MAC  net.HardwareAddr
	IP   net.IP
	Port uint16
}

// Template holds a fully serialized frame and the byte offset of its
// mutable payload header, so repeated transmissions re-stamp in place
// instead of re-running the layer serializer on every packet.
type Template struct {
	buf        []byte
	payloadOff int
}

// idForSignature picks a recognizable IPv4 identification field: 0x1564 for
// the SLA signature, 0x1234 otherwise. Cosmetic only, never used for parsing.
func idForSignature(signature string) uint16 {
	if signature == SignatureY1564 {
		return 0x1564
	}
	return 0x1234
}

// NewTemplate builds a frame template of frameSize bytes (the nominal
// RFC2544 wire-size label, 64..9000) carrying signature as the payload's
// identity marker and streamID as the test's stream/service identifier.
// dscp is the 6-bit DiffServ code point written into the IPv4 ToS byte
// (ToS = dscp<<2).
//
// The payload header (HeaderLen bytes) always fits: when frameSize is too
// small to hold the Ethernet/IPv4/UDP headers plus the payload header with
// zero padding (only possible at the 64-byte standard size), the
// constructed frame is grown to the minimum that fits the header instead
// of truncating it, and Template.Len reports the actual length used.
func NewTemplate(src, dst Endpoint, signature string, streamID uint32, frameSize uint32, dscp uint8) (*Template, error) {
	payloadLen := int(frameSize) - ethHeaderLen
	if payloadLen < HeaderLen {
		payloadLen = HeaderLen
	}

	eth := &layers.Ethernet{
		SrcMAC:       src.MAC,
		DstMAC:       dst.MAC,
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TOS:      dscp << 2,
		Id:       idForSignature(signature),
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    src.IP,
		DstIP:    dst.IP,
	}
	udp := &layers.UDP{
		SrcPort: layers.UDPPort(src.Port),
		DstPort: layers.UDPPort(dst.Port),
	}
	if err := udp.SetNetworkLayerForChecksum(ip); err != nil {
		return nil, err
	}

	payload := make([]byte, payloadLen)
	sig := pad(signature)
	copy(payload[offSig:offSig+SignatureLen], sig[:])
	binary.BigEndian.PutUint32(payload[offStream:offStream+4], streamID)
	for i := HeaderLen; i < len(payload); i++ {
		payload[i] = byte(i % 256)
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{ComputeChecksums: true, FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, udp, gopacket.Payload(payload)); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.Bytes()))
	copy(out, buf.Bytes())

	// UDP checksum is optional over IPv4; leave it at zero rather than the
	// value SerializeLayers just computed (ComputeChecksums also covers the
	// IPv4 header checksum, which does need to be correct).
	binary.BigEndian.PutUint16(out[ethHeaderLen-2:ethHeaderLen], 0)

	return &Template{
		buf:        out,
		payloadOff: ethHeaderLen,
	}, nil
}

// Stamp rewrites the sequence number, transmit timestamp and flags in
// place and returns the full frame bytes ready to send. The returned slice
// aliases the Template's internal buffer and is only valid until the next
// Stamp call; callers that need to retain the bytes (e.g. to hand to an
// IoAdapter that queues writes asynchronously) should copy them.
func (t *Template) Stamp(seq uint32, txTime time.Time, flags byte) []byte {
	h := t.buf[t.payloadOff : t.payloadOff+HeaderLen]
	binary.BigEndian.PutUint32(h[offSeq:offSeq+4], seq)
	ns := uint64(txTime.UnixNano())
	binary.BigEndian.PutUint32(h[offTsHi:offTsHi+4], uint32(ns>>32))
	binary.BigEndian.PutUint32(h[offTsLo:offTsLo+4], uint32(ns))
	h[offFlags] = flags
	return t.buf
}

// Bytes returns the current contents of the template's frame buffer
// without mutating sequence/timestamp.
func (t *Template) Bytes() []byte {
	return t.buf
}

// Len returns the full wire length of the template's frame, including the
// Ethernet, IPv4 and UDP headers.
func (t *Template) Len() int {
	return len(t.buf)
}

// Parsed is the result of decoding a received frame's payload header.
type Parsed struct {
	Seq      uint32
	TxTime   time.Time
	StreamID uint32
	Flags    byte
}

// IsValid reports whether payload (the UDP payload bytes) carries a
// byte-exact signature match at the fixed payload offset.
func IsValid(payload []byte, wantSignature string) bool {
	if len(payload) < HeaderLen {
		return false
	}
	want := pad(wantSignature)
	return string(payload[offSig:offSig+SignatureLen]) == string(want[:])
}

// GetSeq returns the sequence number of an already-validated payload.
func GetSeq(payload []byte) uint32 {
	return binary.BigEndian.Uint32(payload[offSeq : offSeq+4])
}

// GetTxTimestamp returns the tx timestamp, in nanoseconds, of an
// already-validated payload.
func GetTxTimestamp(payload []byte) uint64 {
	hi := binary.BigEndian.Uint32(payload[offTsHi : offTsHi+4])
	lo := binary.BigEndian.Uint32(payload[offTsLo : offTsLo+4])
	return uint64(hi)<<32 | uint64(lo)
}

// GetStreamID returns the stream/service id of an already-validated
// payload.
func GetStreamID(payload []byte) uint32 {
	return binary.BigEndian.Uint32(payload[offStream : offStream+4])
}

// GetFlags returns the flags byte of an already-validated payload.
func GetFlags(payload []byte) byte {
	return payload[offFlags]
}

// Parse validates a captured frame's signature and decodes its payload
// header, where payload is the UDP payload bytes (signature through
// flags).
func Parse(payload []byte, wantSignature string) (Parsed, error) {
	if len(payload) < HeaderLen {
		return Parsed{}, ErrShortFrame
	}
	if !IsValid(payload, wantSignature) {
		return Parsed{}, ErrBadSignature
	}
	ns := GetTxTimestamp(payload)
	return Parsed{
		Seq:      GetSeq(payload),
		TxTime:   time.Unix(0, int64(ns)),
		StreamID: GetStreamID(payload),
		Flags:    GetFlags(payload),
	}, nil
}

// ParseFrame decodes a full captured Ethernet frame and returns the
// benchmark payload header within it, failing with ErrShortFrame or
// ErrBadSignature (via Parse) if the frame does not carry one.
func ParseFrame(frame []byte, wantSignature string) (Parsed, error) {
	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.NoCopy)
	udpLayer := pkt.Layer(layers.LayerTypeUDP)
	if udpLayer == nil {
		return Parsed{}, ErrShortFrame
	}
	udp, _ := udpLayer.(*layers.UDP)
	return Parse(udp.Payload, wantSignature)
}
