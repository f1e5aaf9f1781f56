// Package borsh provides cursor-based reading of Borsh-serialized account
// data. All integers are little-endian. Every read checks the remaining
// length and fails with ErrOutOfBounds, so a decoder built on Reader cannot
// skip the bounds check for an individual field.
package borsh

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a read would pass the end of the data.
var ErrOutOfBounds = errors.New("read out of bounds")

// Reader provides cursor-based reading of fixed-layout binary data.
type Reader struct {
	data   []byte
	offset int
}

// NewReader creates a new Reader over the given byte slice. The Reader
// never mutates data; the caller retains ownership of the slice.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, offset: 0}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

func (r *Reader) require(what string, n int) error {
	if r.offset+n > len(r.data) {
		return fmt.Errorf("%w: need %d bytes for %s at offset %d, have %d",
			ErrOutOfBounds, n, what, r.offset, r.Remaining())
	}
	return nil
}

func (r *Reader) ReadU8() (uint8, error) {
	if err := r.require("u8", 1); err != nil {
		return 0, err
	}
	val := r.data[r.offset]
	r.offset++
	return val, nil
}

func (r *Reader) ReadU16() (uint16, error) {
	if err := r.require("u16", 2); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint16(r.data[r.offset:])
	r.offset += 2
	return val, nil
}

func (r *Reader) ReadU32() (uint32, error) {
	if err := r.require("u32", 4); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return val, nil
}

func (r *Reader) ReadU64() (uint64, error) {
	if err := r.require("u64", 8); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint64(r.data[r.offset:])
	r.offset += 8
	return val, nil
}

// ReadU128 returns the raw little-endian 16-byte representation.
func (r *Reader) ReadU128() ([16]byte, error) {
	if err := r.require("u128", 16); err != nil {
		return [16]byte{}, err
	}
	val := [16]byte(r.data[r.offset : r.offset+16])
	r.offset += 16
	return val, nil
}

func (r *Reader) ReadPubkey() ([32]byte, error) {
	if err := r.require("pubkey", 32); err != nil {
		return [32]byte{}, err
	}
	val := [32]byte(r.data[r.offset : r.offset+32])
	r.offset += 32
	return val, nil
}

// ReadBytes copies the next n bytes out of the buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.require(fmt.Sprintf("%d bytes", n), n); err != nil {
		return nil, err
	}
	val := make([]byte, n)
	copy(val, r.data[r.offset:r.offset+n])
	r.offset += n
	return val, nil
}
