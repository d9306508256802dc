package domain

import "fmt"

// Money is an integer amount of a currency's minor unit (cents).
type Money struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents, Currency: m.Currency}
}

func (m Money) Mul(qty int32) Money {
	return Money{Cents: m.Cents * int64(qty), Currency: m.Currency}
}

func (m Money) IsZero() bool { return m.Cents == 0 }

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.Cents/100, m.Cents%100, m.Currency)
}
