package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogersnm/labkit/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func newTaskStore(t *testing.T) *Store[model.Task, *model.Task] {
	return New[model.Task](filepath.Join(t.TempDir(), "tasks.json"), zaptest.NewLogger(t))
}

func mustTask(t *testing.T, desc, cat string) *model.Task {
	t.Helper()
	task, err := model.NewTask(desc, cat)
	require.NoError(t, err)
	return task
}

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	s := newTaskStore(t)
	a, err := s.Add(mustTask(t, "first", ""))
	require.NoError(t, err)
	b, err := s.Add(mustTask(t, "second", ""))
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 3, s.NextID())
}

func TestAdd_InvalidLeavesStoreUnchanged(t *testing.T) {
	s := newTaskStore(t)
	_, err := s.Add(&model.Task{Description: "  "})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.NextID())
}

func TestFind(t *testing.T) {
	s := newTaskStore(t)
	added, err := s.Add(mustTask(t, "report", "work"))
	require.NoError(t, err)

	got, ok := s.Find(added.ID)
	require.True(t, ok)
	assert.Equal(t, added, got)

	_, ok = s.Find(99)
	assert.False(t, ok)
}

func TestUpdate_NotFoundIsFalse(t *testing.T) {
	s := newTaskStore(t)
	added, _ := s.Add(mustTask(t, "report", "work"))

	assert.True(t, s.Update(added.ID, (*model.Task).MarkDone))
	assert.True(t, added.Done)
	assert.False(t, s.Update(42, (*model.Task).MarkDone))
}

func TestFilterByCategory_IgnoresCase(t *testing.T) {
	s := newTaskStore(t)
	s.Add(mustTask(t, "a", "Work"))
	s.Add(mustTask(t, "b", "home"))
	s.Add(mustTask(t, "c", "WORK"))

	got := s.FilterByCategory("work")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Description)
	assert.Equal(t, "c", got[1].Description)
}

func TestSearch_DescriptionAndCategory(t *testing.T) {
	s := newTaskStore(t)
	s.Add(mustTask(t, "Buy MILK", "home"))
	s.Add(mustTask(t, "write report", "milkshop"))
	s.Add(mustTask(t, "call mom", "family"))

	got := s.Search("milk")
	require.Len(t, got, 2)
	assert.Empty(t, s.Search("zzz"))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTaskStore(t)
	s.Add(mustTask(t, "купить хлеб", "дом"))
	done, _ := s.Add(mustTask(t, "report", "work"))
	done.MarkDone()
	require.NoError(t, s.Save())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "купить хлеб")

	reloaded := New[model.Task](s.Path(), zap.NewNop())
	require.NoError(t, reloaded.Load())
	if diff := cmp.Diff(s.All(), reloaded.All()); diff != "" {
		t.Errorf("reloaded records differ (-saved +loaded):\n%s", diff)
	}
	assert.Equal(t, 3, reloaded.NextID())
}

func TestLoad_MissingFileResetsToEmpty(t *testing.T) {
	s := newTaskStore(t)
	s.Add(mustTask(t, "a", ""))
	s.Add(mustTask(t, "b", ""))
	require.NoError(t, s.Save())
	require.NoError(t, os.Remove(s.Path()))

	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.NextID())
}

func TestLoad_NextIDFollowsMax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":7,"description":"a"},{"id":3,"description":"b"}]`), 0644))

	s := New[model.Task](path, zap.NewNop())
	require.NoError(t, s.Load())
	assert.Equal(t, 8, s.NextID())

	added, err := s.Add(mustTask(t, "c", ""))
	require.NoError(t, err)
	assert.Equal(t, 8, added.ID)
}

func TestLoad_DefaultsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1}, 5, null, {"id":2,"description":"x","category":"  "}]`), 0644))

	s := New[model.Task](path, zap.NewNop())
	require.NoError(t, s.Load())
	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "", all[0].Description)
	assert.Equal(t, model.DefaultCategory, all[0].Category)
	assert.False(t, all[0].Done)
	assert.Equal(t, model.DefaultCategory, all[1].Category)
}

func TestLoad_RenumbersMissingAndDuplicateIDs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":2,"description":"a"},
		{"description":"no id"},
		{"id":2,"description":"dup"},
		{"id":-4,"description":"negative"}
	]`), 0644))

	s := New[model.Task](path, zap.New(core))
	require.NoError(t, s.Load())

	ids := []int{}
	for _, r := range s.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{2, 3, 4, 5}, ids)
	assert.Equal(t, 6, s.NextID())
	assert.Equal(t, 3, logs.FilterMessage("renumbering record with missing or duplicate id").Len())
}

func TestLoad_CorruptFileResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := New[model.Task](path, zap.NewNop())
	s.Add(mustTask(t, "in memory", ""))

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	err := s.Load()
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.NextID())
}

func TestSave_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	s := New[model.Task](filepath.Join(blocker, "tasks.json"), zap.NewNop())
	s.Add(mustTask(t, "a", ""))
	assert.Error(t, s.Save())
}

func TestSave_EmptyStoreWritesEmptyList(t *testing.T) {
	s := newTaskStore(t)
	require.NoError(t, s.Save())
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestTransactions_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.json")
	s := New[model.Transaction](path, zap.NewNop())
	in, err := model.NewTransaction("salary", decimal.NewFromInt(100), "income", "work")
	require.NoError(t, err)
	s.Add(in)
	out, err := model.NewTransaction("coffee", decimal.RequireFromString("3.25"), "expense", "")
	require.NoError(t, err)
	s.Add(out)
	require.NoError(t, s.Save())

	reloaded := New[model.Transaction](path, zap.NewNop())
	require.NoError(t, reloaded.Load())
	if diff := cmp.Diff(s.All(), reloaded.All(), decimalEqual); diff != "" {
		t.Errorf("reloaded transactions differ (-saved +loaded):\n%s", diff)
	}
	assert.True(t, model.Balance(reloaded.All()).Equal(decimal.RequireFromString("96.75")))
}

func TestProperty_AddThenFind(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := New[model.Task]("unused.json", zap.NewNop())
		descs := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9 ]{0,20}[A-Za-z0-9]`), 1, 20).Draw(rt, "descs")
		for _, d := range descs {
			before := s.NextID()
			task, err := model.NewTask(d, "")
			if err != nil {
				rt.Fatalf("new task %q: %v", d, err)
			}
			added, err := s.Add(task)
			if err != nil {
				rt.Fatalf("add: %v", err)
			}
			if added.ID != before || s.NextID() != before+1 {
				rt.Fatalf("id %d, next %d, expected %d/%d", added.ID, s.NextID(), before, before+1)
			}
			got, ok := s.Find(added.ID)
			if !ok || got.Description != task.Description || got.Category != task.Category {
				rt.Fatalf("find(%d) = %+v, %v", added.ID, got, ok)
			}
		}
	})
}

func TestProperty_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		path := filepath.Join(dir, "budget.json")
		s := New[model.Transaction](path, zap.NewNop())
		n := rapid.IntRange(0, 15).Draw(rt, "n")
		for i := 0; i < n; i++ {
			desc := rapid.StringMatching(`[a-zа-я]{1,12}`).Draw(rt, "desc")
			cents := rapid.Int64Range(-1_000_000, 1_000_000).Draw(rt, "cents")
			typ := rapid.SampledFrom([]string{"income", "expense"}).Draw(rt, "type")
			cat := rapid.StringMatching(`[a-z]{0,8}`).Draw(rt, "cat")
			tr, err := model.NewTransaction(desc, decimal.New(cents, -2), typ, cat)
			if err != nil {
				rt.Fatalf("new transaction: %v", err)
			}
			if _, err := s.Add(tr); err != nil {
				rt.Fatalf("add: %v", err)
			}
		}
		if err := s.Save(); err != nil {
			rt.Fatalf("save: %v", err)
		}
		reloaded := New[model.Transaction](path, zap.NewNop())
		if err := reloaded.Load(); err != nil {
			rt.Fatalf("load: %v", err)
		}
		if diff := cmp.Diff(s.All(), reloaded.All(), decimalEqual); diff != "" {
			rt.Fatalf("round trip mismatch:\n%s", diff)
		}
		if reloaded.NextID() != s.NextID() {
			rt.Fatalf("next id %d after reload, %d before", reloaded.NextID(), s.NextID())
		}
	})
}
