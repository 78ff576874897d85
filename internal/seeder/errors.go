package seeder

import (
	"fmt"
	"strings"
)

// ConnectivityError is returned when the connection probe exhausts its
// retries. It carries a checklist of the usual causes so the operator gets
// something actionable instead of a bare dial error.
type ConnectivityError struct {
	Attempts int
	Err      error
}

func (e *ConnectivityError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "database unreachable after %d attempts: %v\n", e.Attempts, e.Err)
	b.WriteString("Check the following:\n")
	b.WriteString("  - the database host is running and reachable from this machine\n")
	b.WriteString("  - the credentials in the connection string are correct\n")
	b.WriteString("  - the port targets a direct connection, not a pooler (5432 vs 6543)\n")
	return b.String()
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
