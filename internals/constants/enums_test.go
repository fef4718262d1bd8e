package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeltOrder(t *testing.T) {
	// Promotion order drives the dashboard belt distribution.
	assert.Less(t, BeltOrder("White"), BeltOrder("Blue"))
	assert.Less(t, BeltOrder("Blue"), BeltOrder("Purple"))
	assert.Less(t, BeltOrder("Purple"), BeltOrder("Brown"))
	assert.Less(t, BeltOrder("Brown"), BeltOrder("Black"))

	// Unknown values sort after every real belt.
	assert.Greater(t, BeltOrder("Rainbow"), BeltOrder("Black"))
	assert.Greater(t, BeltOrder(""), BeltOrder("Black"))
}
