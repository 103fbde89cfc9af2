package models

import (
	"fmt"
	"math"
	"strconv"
)

// Cents is a money amount in integer cents. The API carries amounts as
// two-decimal numbers, so 12050 encodes as 120.50 and back without any
// floating-point drift inside the service.
type Cents int64

func (c Cents) Amount() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	return strconv.FormatFloat(c.Amount(), 'f', 2, 64)
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(c)/100, 'f', 2, 64)), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	amount, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", string(data))
	}
	*c = AmountToCents(amount)
	return nil
}

// AmountToCents rounds half away from zero, so 0.005 becomes one cent.
func AmountToCents(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}
