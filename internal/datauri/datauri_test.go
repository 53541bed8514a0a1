package datauri

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/yammerjp/floatpack/internal/testhelper"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "empty payload",
			data: nil,
			want: "data:application/octet-stream;base64,",
		},
		{
			name: "three little-endian float32 values",
			data: []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x40, 0x40},
			want: "data:application/octet-stream;base64," + testhelper.Base64Dummy2F32,
		},
		{
			name: "padded payload",
			data: []byte{0xc3, 0xf5, 0x48, 0x40},
			want: "data:application/octet-stream;base64,w/VIQA==",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.data); got != tt.want {
				t.Errorf("Encode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0xfe, 0xff, 0x7f, 0x80}
	uri := Encode(data)

	payload, ok := strings.CutPrefix(uri, Prefix)
	if !ok {
		t.Fatalf("URI missing prefix: %q", uri)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("round trip mismatch: got %x, want %x", decoded, data)
	}
}
