package order

// ExpireOrderEvent is posted back by the deferred cloud task to cancel an
// order that was never confirmed.
type ExpireOrderEvent struct {
	ID int64 `json:"id"`
}
