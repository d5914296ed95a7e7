package tracker

import (
	"github.com/rogersnm/labkit/internal/model"
	"github.com/rogersnm/labkit/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Budget struct {
	store *store.Store[model.Transaction, *model.Transaction]
	log   *zap.Logger
}

func OpenBudget(path string, log *zap.Logger) *Budget {
	if log == nil {
		log = zap.NewNop()
	}
	s := store.New[model.Transaction](path, log)
	if err := s.Load(); err != nil {
		log.Warn("could not load transactions, starting with an empty list", zap.String("path", path), zap.Error(err))
	}
	return &Budget{store: s, log: log}
}

func (b *Budget) Add(description string, amount decimal.Decimal, typ, category string) (*model.Transaction, error) {
	tr, err := model.NewTransaction(description, amount, typ, category)
	if err != nil {
		return nil, err
	}
	if _, err := b.store.Add(tr); err != nil {
		return nil, err
	}
	return tr, persist(b.store, b.log)
}

func (b *Budget) Balance() decimal.Decimal { return model.Balance(b.store.All()) }

func (b *Budget) Find(id int) (*model.Transaction, bool) { return b.store.Find(id) }

func (b *Budget) List() []*model.Transaction { return b.store.All() }

func (b *Budget) ByCategory(category string) []*model.Transaction {
	return b.store.FilterByCategory(category)
}

func (b *Budget) Search(query string) []*model.Transaction { return b.store.Search(query) }

func (b *Budget) Save() error { return persist(b.store, b.log) }

func (b *Budget) Path() string { return b.store.Path() }
