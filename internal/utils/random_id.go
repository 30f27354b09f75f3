package utils

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// RandomUniqueID returns a random upper-case letter followed by the current
// Unix time in milliseconds, e.g. "K1760870400123".
func RandomUniqueID() string {
	letter := byte('A' + rand.IntN(26))
	return string(letter) + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
