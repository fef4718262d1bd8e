package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMemberID(t *testing.T) {
	assert.Equal(t, "MBR001", FormatMemberID(1))
	assert.Equal(t, "MBR002", FormatMemberID(2))
	assert.Equal(t, "MBR042", FormatMemberID(42))
	assert.Equal(t, "MBR999", FormatMemberID(999))
	assert.Equal(t, "MBR1000", FormatMemberID(1000))
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "CARD1001", FormatCardNumber(1))
	assert.Equal(t, "CARD1002", FormatCardNumber(2))
	assert.Equal(t, "CARD1043", FormatCardNumber(43))
	assert.Equal(t, "CARD1999", FormatCardNumber(999))
	assert.Equal(t, "CARD2000", FormatCardNumber(1000))
}

func TestMemberNumbersMonotonic(t *testing.T) {
	prevMember, prevCard := "", ""
	for seq := 1; seq <= 50; seq++ {
		member := FormatMemberID(seq)
		card := FormatCardNumber(seq)
		assert.Greater(t, member, prevMember)
		assert.Greater(t, card, prevCard)
		prevMember, prevCard = member, card
	}
}
