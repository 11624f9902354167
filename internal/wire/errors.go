package wire

import "errors"

// Sentinel error kinds from spec §7, usable with errors.Is through
// wrapping. lib/master returns and wraps these; lib/huffman declares its
// own ErrEncodeOverflow and ErrDecodeTruncated values.
var (
	ErrResolveFailed   = errors.New("resolve failed")
	ErrEncodeOverflow  = errors.New("huffman encode overflow")
	ErrDecodeTruncated = errors.New("huffman decode truncated")
	ErrBanned          = errors.New("banned")
	ErrWrongVersion    = errors.New("wrong protocol version")
	ErrTimeout         = errors.New("timeout")
	ErrTransportFailed = errors.New("transport failed")
	ErrParseShortRead  = errors.New("short read while parsing response")
	ErrCancelled       = errors.New("cancelled")
	ErrPartialSuccess  = errors.New("partial success")
)
