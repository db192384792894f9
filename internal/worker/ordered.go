package worker

// InOrder reads results until the channel closes and calls fn for each in
// ascending Index order, starting at 0. Results are held back until every
// lower index has arrived; gaps left by skipped indexes are flushed at the
// end in index order.
func InOrder(results <-chan Result, fn func(Result)) {
	pending := make(map[int]Result)
	next := 0
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			fn(ready)
			next++
		}
	}

	for len(pending) > 0 {
		lowest := -1
		for idx := range pending {
			if lowest < 0 || idx < lowest {
				lowest = idx
			}
		}
		fn(pending[lowest])
		delete(pending, lowest)
	}
}
