package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Direction says whether a transaction adds to or takes from the balance.
type Direction string

const (
	Income  Direction = "income"
	Expense Direction = "expense"
)

var directionAliases = map[string]Direction{
	"income":  Income,
	"expense": Expense,
	"доход":   Income,
	"расход":  Expense,
}

// ParseDirection accepts income/expense in any case, plus the legacy
// доход/расход tokens written by older budget files.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", invalid("type", "%q must be one of income, expense", s)
	}
	return d, nil
}

func (d Direction) Sign() string {
	if d == Income {
		return "+"
	}
	return "-"
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding transaction type: %w", err)
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
