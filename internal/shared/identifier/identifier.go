// Package identifier formats the human-readable business numbers used across
// the workshop: service numbers (SRV...), sales invoices (INV...), and
// purchase orders (PO...).
package identifier

import (
	"fmt"
	"time"

	"github.com/bengkellab/bengkel/internal/shared/biztime"
)

// Format builds a business number: <PREFIX><YYYYMMDD><4-digit sequence>.
// The date stamp uses the workshop's business timezone. Sequences above 9999
// widen naturally instead of wrapping.
func Format(prefix string, date time.Time, seq uint) string {
	return fmt.Sprintf("%s%s%04d", prefix, biztime.DateStamp(date), seq)
}
