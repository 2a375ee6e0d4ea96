package wire

import (
	"net"
	"testing"
	"time"
)

func testEndpoints() (Endpoint, Endpoint) {
	src := Endpoint{
		MAC:  net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		IP:   net.IPv4(10, 0, 0, 1),
		Port: 12345,
	}
	dst := Endpoint{
		MAC:  net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		IP:   net.IPv4(10, 0, 0, 2),
		Port: 3842,
	}
	return src, dst
}

func TestTemplateRoundTrip(t *testing.T) {
	src, dst := testEndpoints()
	tmpl, err := NewTemplate(src, dst, SignatureRFC2544, 7, 1518, 0)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}

	now := time.Unix(1700000000, 123456789)
	frame := tmpl.Stamp(42, now, FlagNone)

	parsed, err := ParseFrame(frame, SignatureRFC2544)
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if parsed.Seq != 42 {
		t.Errorf("Seq = %d, want 42", parsed.Seq)
	}
	if parsed.StreamID != 7 {
		t.Errorf("StreamID = %d, want 7", parsed.StreamID)
	}
	if !parsed.TxTime.Equal(now) {
		t.Errorf("TxTime = %v, want %v", parsed.TxTime, now)
	}
}

func TestTemplateMinimumFrameSize(t *testing.T) {
	src, dst := testEndpoints()
	tmpl, err := NewTemplate(src, dst, SignatureRFC2544, 1, 64, 0)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	if tmpl.Len() < ethHeaderLen+HeaderLen {
		t.Errorf("Len() = %d, want at least %d", tmpl.Len(), ethHeaderLen+HeaderLen)
	}
}

func TestTemplateStandardFrameSizes(t *testing.T) {
	src, dst := testEndpoints()
	for _, fs := range []uint32{64, 128, 256, 512, 1024, 1280, 1518, 9000} {
		tmpl, err := NewTemplate(src, dst, SignatureRFC2544, 1, fs, 0)
		if err != nil {
			t.Fatalf("NewTemplate(%d): %v", fs, err)
		}
		want := int(fs)
		if want < ethHeaderLen+HeaderLen {
			want = ethHeaderLen + HeaderLen
		}
		if tmpl.Len() != want {
			t.Errorf("frame size %d: Len() = %d, want %d", fs, tmpl.Len(), want)
		}
	}
}

func TestSignatureRejection(t *testing.T) {
	src, dst := testEndpoints()
	tmpl, err := NewTemplate(src, dst, SignatureRFC2544, 1, 1518, 0)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	frame := tmpl.Stamp(1, time.Now(), FlagNone)

	if _, err := ParseFrame(frame, SignatureY1564); err != ErrBadSignature {
		t.Errorf("ParseFrame with wrong signature = %v, want ErrBadSignature", err)
	}
}

func TestParseShortPayload(t *testing.T) {
	short := make([]byte, HeaderLen-1)
	if _, err := Parse(short, SignatureRFC2544); err != ErrShortFrame {
		t.Errorf("Parse(short) = %v, want ErrShortFrame", err)
	}
}

func TestPadTruncatesAndPads(t *testing.T) {
	if got := pad("RFC2544"); string(got[:]) != "RFC2544" {
		t.Errorf("pad(RFC2544) = %q", got)
	}
	if got := pad("Y.1564 "); string(got[:]) != "Y.1564 " {
		t.Errorf("pad(Y.1564 ) = %q", got)
	}
	if got := pad("ab"); string(got[:]) != "ab     " {
		t.Errorf("pad(ab) = %q, want padded to 7 bytes", got)
	}
}
