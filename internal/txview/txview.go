// Package txview shapes backend transaction lists for display: direction
// tagging, deduplication, filtering, summary totals and pagination.
//
// Two pages classify direction differently and both rules are kept as-is:
// the single-account page merges the directional endpoint results (with the
// in-both-sets tie-break resolving to incoming), while the transactions page
// matches against the viewer's owned account ids and falls back to the sign
// of the amount.
package txview

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/aleksanderWitek/simplybank-web/internal/models"
)

// Direction is the client-inferred classification of a transaction relative
// to the viewed account or the viewing user's accounts.
type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)

// Entry is a transaction annotated with its derived direction.
type Entry struct {
	models.Transaction
	Direction Direction
}

// IsIncoming is a template convenience.
func (e Entry) IsIncoming() bool { return e.Direction == Incoming }

// entryWire keeps the embedded Transaction's custom marshalling from taking
// over the whole Entry when entries are cached as JSON.
type entryWire struct {
	Transaction models.Transaction `json:"transaction"`
	Direction   Direction          `json:"direction"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryWire{Transaction: e.Transaction, Direction: e.Direction})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var w entryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Transaction = w.Transaction
	e.Direction = w.Direction
	return nil
}

// Sign is the rendered amount prefix.
func (e Entry) Sign() string {
	if e.Direction == Incoming {
		return "+"
	}
	return "-"
}

// MergeDirectional merges the bank_account_from and bank_account_to result
// sets for one account, deduplicating by transaction id. A transaction first
// seen in the from set is outgoing; one first seen in the to set is
// incoming. A transaction present in both sets is rewritten to incoming, so
// a self-transfer classifies incoming exactly once.
func MergeDirectional(from, to []models.Transaction) []Entry {
	seen := make(map[int64]int, len(from)+len(to))
	merged := make([]Entry, 0, len(from)+len(to))

	for _, tx := range from {
		if _, ok := seen[tx.ID]; ok {
			continue
		}
		seen[tx.ID] = len(merged)
		merged = append(merged, Entry{Transaction: tx, Direction: Outgoing})
	}
	for _, tx := range to {
		if idx, ok := seen[tx.ID]; ok {
			merged[idx].Direction = Incoming
			continue
		}
		seen[tx.ID] = len(merged)
		merged = append(merged, Entry{Transaction: tx, Direction: Incoming})
	}
	return merged
}

// Dedup flattens per-account from/to result sets into one list, keeping the
// first occurrence of each transaction id.
func Dedup(lists ...[]models.Transaction) []models.Transaction {
	seen := make(map[int64]bool)
	var out []models.Transaction
	for _, list := range lists {
		for _, tx := range list {
			if seen[tx.ID] {
				continue
			}
			seen[tx.ID] = true
			out = append(out, tx)
		}
	}
	return out
}

// Classifier determines direction from the viewer's owned account ids,
// falling back to the sign of the amount when ownership gives no answer.
type Classifier struct {
	owned map[int64]bool
}

// NewClassifier builds a Classifier over the given account ids.
func NewClassifier(accountIDs []int64) Classifier {
	owned := make(map[int64]bool, len(accountIDs))
	for _, id := range accountIDs {
		owned[id] = true
	}
	return Classifier{owned: owned}
}

// Direction classifies one transaction. The to-side match wins over the
// from-side match when both accounts belong to the viewer.
func (c Classifier) Direction(tx models.Transaction) Direction {
	if len(c.owned) > 0 {
		if tx.HasToID && c.owned[tx.ToID] {
			return Incoming
		}
		if tx.HasFromID && c.owned[tx.FromID] {
			return Outgoing
		}
	}
	if tx.Amount >= 0 {
		return Incoming
	}
	return Outgoing
}

// Classify annotates every transaction in the list.
func (c Classifier) Classify(txs []models.Transaction) []Entry {
	entries := make([]Entry, len(txs))
	for i, tx := range txs {
		entries[i] = Entry{Transaction: tx, Direction: c.Direction(tx)}
	}
	return entries
}

// FilterDirection keeps entries matching the INCOMING/OUTGOING filter;
// any other filter value keeps everything.
func FilterDirection(entries []Entry, filter string) []Entry {
	var want Direction
	switch filter {
	case "INCOMING":
		want = Incoming
	case "OUTGOING":
		want = Outgoing
	default:
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Direction == want {
			out = append(out, e)
		}
	}
	return out
}

// FilterStatus keeps entries whose status matches (case-insensitive);
// "ALL" or empty keeps everything.
func FilterStatus(entries []Entry, status string) []Entry {
	if status == "" || status == "ALL" {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.EqualFold(e.StatusOrDefault(), status) {
			out = append(out, e)
		}
	}
	return out
}

// Summary holds the strip totals above a transaction table. Totals are over
// absolute amounts.
type Summary struct {
	Count    int
	Incoming float64
	Outgoing float64
}

// Summarize computes the summary strip for a filtered list.
func Summarize(entries []Entry) Summary {
	var s Summary
	s.Count = len(entries)
	for _, e := range entries {
		amt := math.Abs(e.Amount)
		if e.Direction == Incoming {
			s.Incoming += amt
		} else {
			s.Outgoing += amt
		}
	}
	return s
}

// PageSize is the fixed page size of every transaction table.
const PageSize = 20

// Pagination describes the pager controls under a transaction table.
type Pagination struct {
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Paginate slices entries down to the requested page. Pages are 1-based and
// clamped into range; an empty list still reports one page.
func Paginate(entries []Entry, page int) ([]Entry, Pagination) {
	totalPages := (len(entries) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end], Pagination{
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Find returns the entry with the given transaction id, if present.
func Find(entries []Entry, id int64) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
