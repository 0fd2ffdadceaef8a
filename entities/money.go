package entities

import (
	"fmt"
	"strconv"
	"strings"
)

type Money struct {
	Amount   string `json:"amount" db:"amount"`
	Currency string `json:"currency" db:"currency"`
}

// MinorUnits converts the decimal amount to the smallest currency unit
// (e.g. "52.50" -> 5250). All supported currencies have two decimal places.
func (m Money) MinorUnits() (int64, error) {
	amount := strings.TrimSpace(m.Amount)
	if amount == "" || strings.HasPrefix(amount, "-") {
		return 0, fmt.Errorf("invalid amount: %q", m.Amount)
	}

	whole, frac := amount, ""
	if idx := strings.IndexByte(amount, '.'); idx >= 0 {
		whole, frac = amount[:idx], amount[idx+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", m.Amount)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %q", m.Amount)
	}

	return units, nil
}

func (m Money) String() string {
	return m.Amount + " " + m.Currency
}
