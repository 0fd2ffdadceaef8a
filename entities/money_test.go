package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing/entities"
)

func TestMoneyMinorUnits(t *testing.T) {
	testCases := []struct {
		amount string
		units  int64
	}{
		{amount: "52.50", units: 5250},
		{amount: "3000.00", units: 300000},
		{amount: "3000", units: 300000},
		{amount: "0.05", units: 5},
		{amount: "10.5", units: 1050},
		{amount: " 12.00 ", units: 1200},
	}
	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			units, err := entities.Money{Amount: tc.amount, Currency: "NGN"}.MinorUnits()
			require.NoError(t, err)
			assert.Equal(t, tc.units, units)
		})
	}
}

func TestMoneyMinorUnitsRejectsInvalidAmounts(t *testing.T) {
	for _, amount := range []string{"", "-10.00", "12.345", "ten", "10.x"} {
		t.Run(amount, func(t *testing.T) {
			_, err := entities.Money{Amount: amount, Currency: "NGN"}.MinorUnits()
			assert.Error(t, err)
		})
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "52.50 NGN", entities.Money{Amount: "52.50", Currency: "NGN"}.String())
}
