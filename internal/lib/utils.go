package lib

import (
	"fmt"
	"time"
)

// Err returns formatted error in "op: err" template.
func Err(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ParseDate accepts RFC3339 timestamps and plain YYYY-MM-DD dates,
// which is what the dashboard and the GitLab API both send.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
