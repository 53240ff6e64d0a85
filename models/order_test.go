package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var orderIDPattern = regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{6}$`)

func TestNewOrderID_Format(t *testing.T) {
	for i := 0; i < 20; i++ {
		id := NewOrderID()
		assert.Regexp(t, orderIDPattern, id)
	}
}

func TestNewOrderID_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[NewOrderID()] = true
	}
	// Timestamp plus six random chars; collisions across 100 draws would
	// point at a broken suffix.
	assert.Greater(t, len(seen), 90)
}
