// Package datauri wraps binary payloads in base64 data URIs.
package datauri

import "encoding/base64"

// Prefix is the fixed scheme and MIME header of every produced URI.
const Prefix = "data:application/octet-stream;base64,"

// Encode returns data as an application/octet-stream data URI. The payload
// is standard-alphabet base64 with padding and no line wrapping.
func Encode(data []byte) string {
	return Prefix + base64.StdEncoding.EncodeToString(data)
}
