package testlang

import (
	"encoding/binary"
	"math/big"
)

// bigFromInt is a small convenience wrapper for call sites that need to
// encode a plain int (e.g. a freshly chosen array length) as a Number.
func bigFromInt(v int) *big.Int {
	return big.NewInt(int64(v))
}

// validNumericSize reports whether size is one of the only byte widths the
// generator and parser will encode or decode a Number against. Anything else
// is InvalidSizeError.
func validNumericSize(size int) bool {
	switch size {
	case 1, 2, 4, 8, 16:
		return true
	}
	return false
}

// encodeNumber renders v as size host-endian bytes. size must be one of
// {1, 2, 4, 8, 16}; host-endian here means the machine's native byte order,
// obtained from binary.NativeEndian — the same choice encoding/binary
// exposes for in-process, same-host use.
func encodeNumber(v *big.Int, size int) ([]byte, error) {
	if !validNumericSize(size) {
		return nil, &InvalidSizeError{Value: size}
	}

	buf := make([]byte, size)
	switch size {
	case 1:
		buf[0] = byte(v.Int64())
	case 2:
		binary.NativeEndian.PutUint16(buf, uint16(v.Int64()))
	case 4:
		binary.NativeEndian.PutUint32(buf, uint32(v.Int64()))
	case 8:
		binary.NativeEndian.PutUint64(buf, uint64(v.Int64()))
	case 16:
		putUint128(buf, v)
	}
	return buf, nil
}

// decodeNumber reads size host-endian bytes from b as a non-negative
// integer. size must be one of {1, 2, 4, 8, 16} and b must hold exactly
// size bytes.
func decodeNumber(b []byte, size int) (*big.Int, error) {
	if !validNumericSize(size) {
		return nil, &InvalidSizeError{Value: size}
	}

	switch size {
	case 1:
		return big.NewInt(int64(b[0])), nil
	case 2:
		return big.NewInt(int64(binary.NativeEndian.Uint16(b))), nil
	case 4:
		return big.NewInt(int64(binary.NativeEndian.Uint32(b))), nil
	case 8:
		return new(big.Int).SetUint64(binary.NativeEndian.Uint64(b)), nil
	case 16:
		return getUint128(b), nil
	}
	panic("unreachable")
}

// putUint128 writes v's low 128 bits into buf (len 16) in host-endian byte
// order, by treating buf as two host-endian 64-bit halves.
func putUint128(buf []byte, v *big.Int) {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask64).Uint64()
	hi := new(big.Int).Rsh(v, 64)
	hi.And(hi, mask64)

	if isLittleEndianHost() {
		binary.LittleEndian.PutUint64(buf[0:8], lo)
		binary.LittleEndian.PutUint64(buf[8:16], hi.Uint64())
	} else {
		binary.BigEndian.PutUint64(buf[8:16], lo)
		binary.BigEndian.PutUint64(buf[0:8], hi.Uint64())
	}
}

// getUint128 is the inverse of putUint128.
func getUint128(buf []byte) *big.Int {
	var lo, hi uint64
	if isLittleEndianHost() {
		lo = binary.LittleEndian.Uint64(buf[0:8])
		hi = binary.LittleEndian.Uint64(buf[8:16])
	} else {
		lo = binary.BigEndian.Uint64(buf[8:16])
		hi = binary.BigEndian.Uint64(buf[0:8])
	}

	result := new(big.Int).SetUint64(hi)
	result.Lsh(result, 64)
	result.Or(result, new(big.Int).SetUint64(lo))
	return result
}

// isLittleEndianHost reports whether binary.NativeEndian is little-endian,
// used only to decide the byte order of the two 64-bit halves that make up
// a 128-bit numeric encoding (binary.NativeEndian has no native 128-bit
// helper to delegate to directly).
func isLittleEndianHost() bool {
	var x uint16 = 1
	buf := make([]byte, 2)
	binary.NativeEndian.PutUint16(buf, x)
	return buf[0] == 1
}
