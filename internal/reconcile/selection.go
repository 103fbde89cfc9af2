package reconcile

import (
	"sort"

	"github.com/hrm8/hrm8-backend/internal/models"
)

// Selection is the set of commission ids an actor has picked for
// withdrawal. It holds no money itself; amounts always come from the
// balance snapshot the selection is resolved against.
type Selection map[string]struct{}

func NewSelection() Selection {
	return make(Selection)
}

// Toggle adds the id if absent and removes it if present.
func (s Selection) Toggle(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) Len() int {
	return len(s)
}

func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// IDs returns the selected ids in a stable order.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectedAmount sums the amounts of the available commissions whose id
// is in the selection. Ids that are no longer available contribute
// nothing; an empty selection sums to zero.
func SelectedAmount(sel Selection, available []models.CommissionRef) models.Cents {
	var sum models.Cents
	for _, c := range available {
		if sel.Has(c.ID) {
			sum += c.Amount
		}
	}
	return sum
}

// Reconciles reports whether the requested amount equals the sum of the
// referenced commissions exactly. Amounts are integer cents, so the
// to-the-cent rule is plain equality.
func Reconciles(amount models.Cents, commissions []models.Commission) bool {
	var sum models.Cents
	for _, c := range commissions {
		sum += c.Amount
	}
	return sum == amount
}
