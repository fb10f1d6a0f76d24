package random

import (
	crand "crypto/rand"
	"math/big"
)

const Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// String returns length characters drawn uniformly from charset using the
// system's secure random source.
func String(length int, charset string) (string, error) {
	b := make([]byte, length)
	l := big.NewInt(int64(len(charset)))
	for i := range b {
		num, err := crand.Int(crand.Reader, l)
		if err != nil {
			return "", err
		}
		b[i] = charset[num.Int64()]
	}
	return string(b), nil
}

// Reference returns a human friendly identifier such as ORD-7K2Q9XHD.
func Reference(prefix string) (string, error) {
	s, err := String(8, Upper)
	if err != nil {
		return "", err
	}
	return prefix + "-" + s, nil
}
