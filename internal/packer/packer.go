// Package packer serializes float sequences into contiguous IEEE-754
// byte buffers.
package packer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// DType selects the IEEE-754 width of each packed component.
type DType string

// Endian selects the byte order of each packed component.
type Endian string

const (
	Float32 DType = "f32"
	Float64 DType = "f64"

	Little Endian = "little"
	Big    Endian = "big"
)

// ErrInvalidConfig reports a Config field outside the supported set.
var ErrInvalidConfig = errors.New("invalid packing configuration")

// Config is the width and byte-order pair used by Pack.
type Config struct {
	DType  DType
	Endian Endian
}

// DefaultConfig returns the 32-bit little-endian configuration.
func DefaultConfig() Config {
	return Config{DType: Float32, Endian: Little}
}

// Size returns the packed width of one component in bytes.
func (d DType) Size() int {
	if d == Float64 {
		return 8
	}
	return 4
}

func (c Config) validate() error {
	switch c.DType {
	case Float32, Float64:
	default:
		return fmt.Errorf("%w: dtype must be %q or %q, got %q", ErrInvalidConfig, Float32, Float64, c.DType)
	}
	switch c.Endian {
	case Little, Big:
	default:
		return fmt.Errorf("%w: endian must be %q or %q, got %q", ErrInvalidConfig, Little, Big, c.Endian)
	}
	return nil
}

func (c Config) byteOrder() binary.ByteOrder {
	if c.Endian == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Pack serializes values in order as IEEE-754 floats of the configured
// width and byte order, with no padding or headers between components.
// Narrowing to 32 bits rounds to nearest; overflow becomes ±Inf. The
// configuration is validated before any packing occurs; the command-line
// parser restricts the choices already, but Pack is usable standalone.
func Pack(values []float64, cfg Config) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	order := cfg.byteOrder()
	buf := make([]byte, 0, len(values)*cfg.DType.Size())
	switch cfg.DType {
	case Float32:
		var b [4]byte
		for _, v := range values {
			order.PutUint32(b[:], math.Float32bits(float32(v)))
			buf = append(buf, b[:]...)
		}
	case Float64:
		var b [8]byte
		for _, v := range values {
			order.PutUint64(b[:], math.Float64bits(v))
			buf = append(buf, b[:]...)
		}
	}
	return buf, nil
}
