package voucher

import (
	"crypto/rand"
	"math/big"
)

// Alphabet drops the glyphs people misread on paper: O/0 and I/1.
const (
	Alphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	CodeLength = 10
)

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// GenerateCode samples CodeLength characters uniformly from Alphabet.
func GenerateCode() (string, error) {
	b := make([]byte, CodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b), nil
}
