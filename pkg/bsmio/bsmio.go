// Package bsmio loads BSM files from disk or any reader into memory,
// transparently decompressing zstd-wrapped files (.bsm.zst).
package bsmio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/libbsm/pkg/bsm"
	"github.com/klauspost/compress/zstd"
)

// ErrTooLarge is returned when the (decompressed) file exceeds Options.MaxSize.
var ErrTooLarge = errors.New("BSM file exceeds size limit")

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Options controls how files are read.
type Options struct {
	MaxSize    int64 // Upper bound on the in-memory size; 0 means no limit
	Decompress bool  // Unwrap zstd frames
}

// DefaultOptions returns the options used by ReadFile callers that have
// no configuration.
func DefaultOptions() Options {
	return Options{
		MaxSize:    256 << 20,
		Decompress: true,
	}
}

// Compressed reports whether data starts with a zstd frame.
func Compressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// Read reads r to the end and returns its contents, decompressed if the
// stream is zstd and opts.Decompress is set.
func Read(r io.Reader, opts Options) ([]byte, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))

	var src io.Reader = br
	if opts.Decompress && Compressed(head) {
		dec, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		defer dec.Close()
		src = dec
	}

	if opts.MaxSize > 0 {
		src = io.LimitReader(src, opts.MaxSize+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading BSM data: %w", err)
	}
	if opts.MaxSize > 0 && int64(len(data)) > opts.MaxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, opts.MaxSize)
	}
	return data, nil
}

// ReadFile reads a BSM file from disk.
func ReadFile(path string, opts Options) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading BSM file: %w", err)
	}
	defer f.Close()

	data, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading BSM file %s: %w", path, err)
	}
	return data, nil
}

// LoadFile reads a BSM file from disk and decodes every section.
func LoadFile(path string, opts Options) (*bsm.Model, error) {
	data, err := ReadFile(path, opts)
	if err != nil {
		return nil, err
	}
	m, err := bsm.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parsing BSM file %s: %w", path, err)
	}
	return m, nil
}
