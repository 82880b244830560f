package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const ticketAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewTicketID builds a pickup ticket id of the form BLD-<ts36>-<RANDOM6>.
// The timestamp part orders tickets roughly by creation time; the random
// suffix makes collisions within one millisecond negligible. Uniqueness is
// still enforced by the database, and callers retry on a duplicate.
func NewTicketID() (string, error) {
	var sb strings.Builder
	sb.WriteString("BLD-")
	sb.WriteString(strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36)))
	sb.WriteByte('-')
	max := big.NewInt(int64(len(ticketAlphabet)))
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(ticketAlphabet[n.Int64()])
	}
	return sb.String(), nil
}
