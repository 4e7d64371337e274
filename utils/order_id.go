package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	OrderIDMin = 1000
	OrderIDMax = 9999
)

var orderIDSpan = big.NewInt(OrderIDMax - OrderIDMin + 1)

// GenerateOrderID returns a random 4-digit decimal string in [1000, 9999].
// rand.Int draws uniformly, so there is no modulo bias.
func GenerateOrderID() (string, error) {
	n, err := rand.Int(rand.Reader, orderIDSpan)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+OrderIDMin, 10), nil
}
