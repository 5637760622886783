package board

import "orderdesk/internal/domain"

// CompletedLimit caps how many completed orders a board shows.
const CompletedLimit = 10

// Buckets groups a snapshot by status for the POS board.
type Buckets struct {
	New       []domain.Order `json:"new"`
	Accepted  []domain.Order `json:"accepted"`
	Completed []domain.Order `json:"completed"`
}

func (b Buckets) Len() int {
	return len(b.New) + len(b.Accepted) + len(b.Completed)
}

// Partition splits a snapshot into buckets, keeping snapshot order within
// each bucket. Snapshots are newest first, so Completed keeps the most
// recent CompletedLimit orders. Orders with an unknown status are dropped.
// Partition never modifies its input.
func Partition(orders []domain.Order) Buckets {
	b := Buckets{
		New:       []domain.Order{},
		Accepted:  []domain.Order{},
		Completed: []domain.Order{},
	}
	for _, o := range orders {
		switch o.Status {
		case domain.StatusNew:
			b.New = append(b.New, o)
		case domain.StatusAccepted:
			b.Accepted = append(b.Accepted, o)
		case domain.StatusCompleted:
			if len(b.Completed) < CompletedLimit {
				b.Completed = append(b.Completed, o)
			}
		}
	}
	return b
}
