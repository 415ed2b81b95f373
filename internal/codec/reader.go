package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// InsufficientDataError reports a read past the end of the account buffer.
type InsufficientDataError struct {
	Needed    int
	Remaining int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need %d bytes, %d remaining", e.Needed, e.Remaining)
}

// Reader is an offset-tracked cursor over a raw account buffer. Every read
// checks bounds before advancing and fails with InsufficientDataError instead
// of reading past the end. Soft anomalies (a malformed option flag) are
// collected as warnings rather than errors because ledger data is untrusted.
type Reader struct {
	buf      []byte
	off      int
	warnings []string
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Warnings returns the soft anomalies collected during reads.
func (r *Reader) Warnings() []string {
	return r.warnings
}

// Warnf records a soft anomaly without failing the decode.
func (r *Reader) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *Reader) require(n int) error {
	if r.off+n > len(r.buf) {
		return &InsufficientDataError{Needed: n, Remaining: len(r.buf) - r.off}
	}
	return nil
}

func (r *Reader) U8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *Reader) U16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *Reader) U32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *Reader) U64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

// Bool reads one byte; any non-zero value is true.
func (r *Reader) Bool() (bool, error) {
	v, err := r.U8()
	return v != 0, err
}

func (r *Reader) Pubkey() (solana.PublicKey, error) {
	if err := r.require(solana.PublicKeyLength); err != nil {
		return solana.PublicKey{}, err
	}
	pk := solana.PublicKeyFromBytes(r.buf[r.off : r.off+solana.PublicKeyLength])
	r.off += solana.PublicKeyLength
	return pk, nil
}

// OptionFlag reads a one-byte option discriminant. A flag other than 0 or 1
// is treated as "absent" with a warning instead of an error.
func (r *Reader) OptionFlag() (bool, error) {
	v, err := r.U8()
	if err != nil {
		return false, err
	}
	if v > 1 {
		r.Warnf("option flag out of range at offset %d: %d, treating as absent", r.off-1, v)
		return false, nil
	}
	return v == 1, nil
}

func (r *Reader) OptionU8() (*uint8, error) {
	present, err := r.OptionFlag()
	if err != nil || !present {
		return nil, err
	}
	v, err := r.U8()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Reader) OptionI64() (*int64, error) {
	present, err := r.OptionFlag()
	if err != nil || !present {
		return nil, err
	}
	v, err := r.I64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Reader) OptionPubkey() (*solana.PublicKey, error) {
	present, err := r.OptionFlag()
	if err != nil || !present {
		return nil, err
	}
	pk, err := r.Pubkey()
	if err != nil {
		return nil, err
	}
	return &pk, nil
}

// VecLen reads the u32 length prefix of a vector. Callers must impose their
// own upper bound on how many elements they keep; the encoded length is
// untrusted and only bounds the read loop, never an allocation.
func (r *Reader) VecLen() (int, error) {
	n, err := r.U32()
	return int(n), err
}
