package lib

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// GenerateOrderNumber generates an order number in the format ORD-XXXXXXXX:
// the current unix-milli timestamp in base36 plus two random characters.
// Time-derived so numbers sort chronologically; the random tail keeps two
// orders in the same millisecond apart.
func GenerateOrderNumber() string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)

	timePart := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	randomPart := make([]byte, 2)
	for i := range randomPart {
		randomPart[i] = chars[r.Intn(len(chars))]
	}

	return fmt.Sprintf("ORD-%s%s", timePart, string(randomPart))
}
