package service

import (
	"fmt"
	"strings"
)

// nextNumber builds the next human-facing sequence number for a tenant by
// counting that tenant's existing numbers sharing the prefix, e.g.
// nextNumber("TK-2024", numbers) -> "TK-2024-0007". The count is taken over
// an already tenant-filtered collection, so sequences are per tenant per
// prefix. Counting is not collision-free under concurrent creates; a
// transactional backend should replace this with a per-tenant counter.
func nextNumber(prefix string, existing []string) string {
	count := 0
	for _, number := range existing {
		if strings.HasPrefix(number, prefix+"-") {
			count++
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, count+1)
}
