package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          int
	Description string
	Amount      decimal.Decimal
	Type        Direction
	Category    string
}

// transactionJSON is the on-disk shape; amount is written as a bare number.
type transactionJSON struct {
	ID          int         `json:"id"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Type        Direction   `json:"type"`
	Category    string      `json:"category"`
}

func NewTransaction(description string, amount decimal.Decimal, typ, category string) (*Transaction, error) {
	if strings.TrimSpace(description) == "" {
		return nil, invalid("description", "transaction description must not be empty")
	}
	dir, err := ParseDirection(typ)
	if err != nil {
		return nil, err
	}
	tr := &Transaction{
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Type:        dir,
		Category:    normalizeCategory(category),
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return tr, nil
}

// ParseAmount parses user input such as "100", "-12.5" or "40,75".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid("amount", "%q is not a number", s)
	}
	return d, nil
}

func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return invalid("description", "transaction description must not be empty")
	}
	if t.Type != Income && t.Type != Expense {
		return invalid("type", "%q must be one of income, expense", t.Type)
	}
	return nil
}

func (t *Transaction) RecordID() int      { return t.ID }
func (t *Transaction) SetRecordID(id int) { t.ID = id }

func (t *Transaction) RecordCategory() string { return t.Category }

func (t *Transaction) Searchable() []string { return []string{t.Description, t.Category} }

func (t *Transaction) ApplyDefaults() {
	t.Category = normalizeCategory(t.Category)
	if t.Type == "" {
		t.Type = Income
	}
}

// Signed returns the amount as it contributes to the balance.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%s%s %s #%s (id=%d)", t.Type.Sign(), t.Amount.StringFixed(2), t.Description, t.Category, t.ID)
}

func (t *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionJSON{
		ID:          t.ID,
		Description: t.Description,
		Amount:      json.Number(t.Amount.String()),
		Type:        t.Type,
		Category:    t.Category,
	})
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	amount := decimal.Zero
	if raw.Amount != "" {
		d, err := decimal.NewFromString(raw.Amount.String())
		if err != nil {
			return fmt.Errorf("decoding amount %q: %w", raw.Amount, err)
		}
		amount = d
	}
	*t = Transaction{
		ID:          raw.ID,
		Description: raw.Description,
		Amount:      amount,
		Type:        raw.Type,
		Category:    raw.Category,
	}
	return nil
}

// Balance sums income and subtracts expenses.
func Balance(transactions []*Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Signed())
	}
	return total
}
