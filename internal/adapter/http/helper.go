package http

import (
	"strings"
	"time"
)

// ---- helpers ----

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
