package txview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksanderWitek/simplybank-web/internal/models"
)

func tx(id int64, amount float64) models.Transaction {
	return models.Transaction{ID: id, Amount: amount}
}

func TestMergeDirectional(t *testing.T) {
	from := []models.Transaction{tx(1, -50), tx(2, -20)}
	to := []models.Transaction{tx(3, 100)}

	merged := MergeDirectional(from, to)
	require.Len(t, merged, 3)
	assert.Equal(t, Outgoing, merged[0].Direction)
	assert.Equal(t, Outgoing, merged[1].Direction)
	assert.Equal(t, Incoming, merged[2].Direction)
}

func TestMergeDirectionalSelfTransfer(t *testing.T) {
	// a transaction in both sets appears once and classifies incoming
	from := []models.Transaction{tx(7, 30)}
	to := []models.Transaction{tx(7, 30)}

	merged := MergeDirectional(from, to)
	require.Len(t, merged, 1)
	assert.Equal(t, Incoming, merged[0].Direction)
}

func TestDedup(t *testing.T) {
	a := []models.Transaction{tx(1, 10), tx(2, 20)}
	b := []models.Transaction{tx(2, 20), tx(3, 30)}

	out := Dedup(a, b)
	require.Len(t, out, 3)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(2), out[1].ID)
	assert.Equal(t, int64(3), out[2].ID)
}

func TestClassifierDirection(t *testing.T) {
	c := NewClassifier([]int64{1, 2})

	toOwned := models.Transaction{ID: 10, Amount: -5, ToID: 1, HasToID: true}
	assert.Equal(t, Incoming, c.Direction(toOwned))

	fromOwned := models.Transaction{ID: 11, Amount: 5, FromID: 2, HasFromID: true}
	assert.Equal(t, Outgoing, c.Direction(fromOwned))

	// both owned: the to side wins
	both := models.Transaction{ID: 12, FromID: 1, HasFromID: true, ToID: 2, HasToID: true}
	assert.Equal(t, Incoming, c.Direction(both))

	// neither owned: sign decides, zero counts incoming
	assert.Equal(t, Incoming, c.Direction(models.Transaction{ID: 13, Amount: 0}))
	assert.Equal(t, Incoming, c.Direction(models.Transaction{ID: 14, Amount: 9}))
	assert.Equal(t, Outgoing, c.Direction(models.Transaction{ID: 15, Amount: -9}))
}

func TestClassifierNoOwnedAccounts(t *testing.T) {
	c := NewClassifier(nil)
	// ownership can give no answer, only the sign matters
	in := models.Transaction{ID: 1, Amount: 5, ToID: 99, HasToID: true}
	assert.Equal(t, Incoming, c.Direction(in))
	out := models.Transaction{ID: 2, Amount: -5, FromID: 99, HasFromID: true}
	assert.Equal(t, Outgoing, c.Direction(out))
}

func TestFilterDirection(t *testing.T) {
	entries := []Entry{
		{Transaction: tx(1, 10), Direction: Incoming},
		{Transaction: tx(2, -10), Direction: Outgoing},
	}

	assert.Len(t, FilterDirection(entries, "INCOMING"), 1)
	assert.Len(t, FilterDirection(entries, "OUTGOING"), 1)
	assert.Len(t, FilterDirection(entries, ""), 2)
	assert.Len(t, FilterDirection(entries, "ALL"), 2)
}

func TestFilterStatus(t *testing.T) {
	entries := []Entry{
		{Transaction: models.Transaction{ID: 1, Status: "PENDING"}},
		{Transaction: models.Transaction{ID: 2}},
	}

	assert.Len(t, FilterStatus(entries, "pending"), 1)
	assert.Len(t, FilterStatus(entries, "completed"), 1)
	assert.Len(t, FilterStatus(entries, "ALL"), 2)
	assert.Len(t, FilterStatus(entries, ""), 2)
}

func TestSummarize(t *testing.T) {
	entries := []Entry{
		{Transaction: tx(1, 100), Direction: Incoming},
		{Transaction: tx(2, -40), Direction: Outgoing},
		{Transaction: tx(3, -60), Direction: Outgoing},
	}

	s := Summarize(entries)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 100.0, s.Incoming)
	assert.Equal(t, 100.0, s.Outgoing)
}

func TestPaginate(t *testing.T) {
	entries := make([]Entry, 45)
	for i := range entries {
		entries[i] = Entry{Transaction: tx(int64(i+1), 1)}
	}

	page1, p := Paginate(entries, 1)
	assert.Len(t, page1, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)

	page3, p := Paginate(entries, 3)
	assert.Len(t, page3, 5)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)

	// out-of-range pages clamp
	clamped, p := Paginate(entries, 4)
	assert.Len(t, clamped, 5)
	assert.Equal(t, 3, p.Page)

	first, p := Paginate(entries, 0)
	assert.Len(t, first, 20)
	assert.Equal(t, 1, p.Page)
}

func TestPaginateEmpty(t *testing.T) {
	entries, p := Paginate(nil, 1)
	assert.Empty(t, entries)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestFind(t *testing.T) {
	entries := []Entry{{Transaction: tx(5, 1), Direction: Outgoing}}

	got, ok := Find(entries, 5)
	require.True(t, ok)
	assert.Equal(t, Outgoing, got.Direction)

	_, ok = Find(entries, 6)
	assert.False(t, ok)
}

func TestEntryJSONRoundTrip(t *testing.T) {
	orig := Entry{
		Transaction: models.Transaction{ID: 9, Amount: -12.5, Currency: "EUR", FromID: 1, HasFromID: true},
		Direction:   Outgoing,
	}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Entry
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, orig, got)
}

func TestEntryListRoundTrip(t *testing.T) {
	list := make([]Entry, 3)
	for i := range list {
		list[i] = Entry{Transaction: tx(int64(i), float64(i)), Direction: Incoming}
	}

	data, err := json.Marshal(list)
	require.NoError(t, err)

	var got []Entry
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, list, got)
}

func TestEntrySign(t *testing.T) {
	assert.Equal(t, "+", Entry{Direction: Incoming}.Sign())
	assert.Equal(t, "-", Entry{Direction: Outgoing}.Sign())
}

