package trace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Trace files are msgpack; a ".zst" suffix selects zstd compression.
func compressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// WriteFile encodes st to path.
func WriteFile(path string, st *SimulationTrace) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing trace file: %w", cerr)
		}
	}()

	var w io.Writer = f
	if compressed(path) {
		var zw *zstd.Encoder
		zw, err = zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("creating zstd writer: %w", err)
		}
		defer func() {
			if cerr := zw.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("flushing zstd writer: %w", cerr)
			}
		}()
		w = zw
	}

	if err := msgpack.NewEncoder(w).Encode(st); err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}
	return nil
}

// ReadFile decodes a trace previously written by WriteFile.
func ReadFile(path string) (*SimulationTrace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed(path) {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	var st SimulationTrace
	if err := msgpack.NewDecoder(r).Decode(&st); err != nil {
		return nil, fmt.Errorf("decoding trace: %w", err)
	}
	return &st, nil
}
