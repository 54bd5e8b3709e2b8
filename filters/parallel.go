package filters

import "sync"

// Parallel splits [0, dataSize) into contiguous, disjoint partitions and
// calls fn once per partition, each on its own goroutine. It returns after
// every partition has been processed.
//
// Small inputs, or Workers <= 1, run fn(0, dataSize) on the calling goroutine.
//
// Arguments:
// - dataSize: The number of items (pixels) to partition.
// - opts: Worker count and serial threshold.
// - fn: The partition body; it must only touch items in [partStart, partEnd).
func Parallel(dataSize int, opts Options, fn func(partStart, partEnd int)) {
	// Nothing to visit.
	if dataSize <= 0 {
		return
	}

	// Never start more goroutines than there are items.
	workers := opts.Workers
	if workers > dataSize {
		workers = dataSize
	}

	// Small inputs are not worth the goroutine overhead.
	if workers <= 1 || dataSize < opts.MinParallelPixels {
		fn(0, dataSize)
		return
	}

	// Calculate partition size for each goroutine.
	partSize := dataSize / workers

	// Create wait group to synchronize goroutines.
	var wg sync.WaitGroup
	wg.Add(workers)

	// Launch goroutines to process partitions.
	for i := 0; i < workers; i++ {
		// Calculate partition boundaries.
		partStart := i * partSize
		partEnd := partStart + partSize

		// Last partition takes the remainder.
		if i == workers-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			// Ensure wait group is decremented when done.
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}

	// Wait for all partitions to complete.
	wg.Wait()
}
