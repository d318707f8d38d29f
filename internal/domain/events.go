package domain

// ListEventKind identifies a mutation of the activity list
type ListEventKind string

const (
	ListInserted ListEventKind = "inserted"
	ListMoved    ListEventKind = "moved"
	ListRemoved  ListEventKind = "removed"
)

// ListEvent is the notification the list controller sends to whoever owns
// the view after a mutation has completed in memory.
type ListEvent struct {
	Kind     ListEventKind
	Activity Activity
}
