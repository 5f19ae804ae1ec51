package models_test

import (
	"testing"
	"time"
)

func testDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}
