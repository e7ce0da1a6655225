package utils

import (
	"runtime"
	"sync"
)

// Chunked runs f once for every integer in the range [start, end), handing
// out chunks of 'chunkSize' indexes to a pool of one goroutine per CPU.
// Ranges of at most one chunk run directly on the calling goroutine, so
// small workloads pay nothing for the machinery.
//
// Chunked returns only after every index has been handled; it is designed
// for mass per-node calculations whose results land in distinct slots.
func Chunked(start, end int, f func(int), chunkSize int) {
	if chunkSize < 1 {
		chunkSize = 1
	}

	if end-start <= chunkSize {
		for i := start; i < end; i++ {
			f(i)
		}
		return
	}

	index := start
	var indexMux sync.Mutex

	var wg sync.WaitGroup
	numWorkers := runtime.NumCPU()
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()

			for {
				indexMux.Lock()
				if index >= end {
					indexMux.Unlock()
					return
				}

				i := index
				index += chunkSize
				indexMux.Unlock()

				e := i + chunkSize
				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}
