package wire

// SignatureLen is the fixed byte width of every benchmark payload signature.
const SignatureLen = 7

// The full set of 7-byte signatures carried by the benchmarking suites this
// wire format is shared with. Only RFC2544 and Y1564 have a running
// orchestrator in this repository; the rest are recognized (and rejected as
// foreign) by the codec so a reflector sharing a link with other suites
// never mistakes their traffic for this tool's own.
const (
	SignatureRFC2544 = "RFC2544"
	SignatureY1564   = "Y.1564 "
	SignatureY1731   = "Y.1731 "
	SignatureRFC2889 = "RFC2889"
	SignatureRFC6349 = "RFC6349"
	SignatureMEF48   = "MEF48  "
	SignatureTSN     = "802Qbv "
)

// pad left-justifies s into a 7-byte, space-padded signature, truncating if
// s is already longer than SignatureLen.
func pad(s string) [SignatureLen]byte {
	var out [SignatureLen]byte
	for i := range out {
		out[i] = ' '
	}
	copy(out[:], s)
	return out
}
