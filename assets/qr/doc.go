// Package qr carries the precomputed QR bit matrix shown on the badge.
package qr

//go:generate go run ../../cmd/qrgen -o bit_matrix.go -pkg qr https://example.com
