package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var ticketRe = regexp.MustCompile(`^BLD-[0-9A-Z]+-[0-9A-Z]{6}$`)

func TestNewTicketID_Format(t *testing.T) {
	t.Parallel()
	for i := 0; i < 100; i++ {
		ticket, err := NewTicketID()
		require.NoError(t, err)
		require.Regexp(t, ticketRe, ticket)
	}
}

func TestNewTicketID_Distinct(t *testing.T) {
	t.Parallel()
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		ticket, err := NewTicketID()
		require.NoError(t, err)
		_, dup := seen[ticket]
		require.False(t, dup, "duplicate ticket %s", ticket)
		seen[ticket] = struct{}{}
	}
}
