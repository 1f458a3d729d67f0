package svm

import "sync"

// forEach runs body(i) for i in [0, length) with at most limit
// goroutines in flight, blocking until all complete. limit ≤ 1 runs
// sequentially in the calling goroutine.
func forEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 1 {
		for i := 0; i < length; i++ {
			body(i)
		}

		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)
	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			body(i)
		}(i)
	}
	wg.Wait()
}

// EvaluateAll runs the separation oracle for every sample against one
// read-only weight snapshot, using the problem's configured thread
// count (WithThreads). Results are indexed by sample. If any oracle
// call fails the first error (by sample order) is returned and the
// results are discarded; every in-flight call still runs to completion,
// since mid-call cancellation is not supported.
func (p *Problem) EvaluateAll(w []float64) ([]Result, error) {
	results := make([]Result, len(p.samples))
	errs := make([]error, len(p.samples))

	forEach(len(p.samples), p.threads, func(i int) {
		loss, psi, err := p.SeparationOracle(i, w)
		if err != nil {
			errs[i] = err

			return
		}
		results[i] = Result{Loss: loss, Psi: psi}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
