// Package memory holds the in-process stores behind the usecase Store
// interfaces. Each store guards its state with its own mutex so every single
// call is atomic and serializable; cross-store workflows (the sale commit)
// layer their rollback on top of these primitives.
package memory

import "github.com/Cyndie1416/RetailPOS/internal/event"

func dispatch(d event.Dispatcher, e event.Event) {
	if d != nil {
		d.Dispatch(e)
	}
}
