package emitter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"sync"

	"github.com/unity-forge/backend/internal/models"
)

// DefaultStartHandle is the first handle given to objects of a new document.
// Handles 1-4 are reserved for the scene settings blocks.
const DefaultStartHandle int64 = 100

// MaterialHandle is the handle Unity gives the main object of a .mat file.
// References from renderers use it together with the material's GUID.
const MaterialHandle int64 = 2100000

var blockHeaderRe = regexp.MustCompile(`(?m)^--- !u!(\d+) &(-?\d+)`)

// Allocator hands out document-local handles (fileIDs). Each document gets
// its own allocator; it is safe to share one between goroutines.
type Allocator struct {
	mu   sync.Mutex
	next int64
}

// NewAllocator returns an allocator whose first handle is start.
func NewAllocator(start int64) *Allocator {
	return &Allocator{next: start}
}

// NewAllocatorAfter returns an allocator that continues after the highest
// handle already present in document, never below DefaultStartHandle.
// A document that already uses the largest representable handle is rejected.
func NewAllocatorAfter(document string) (*Allocator, error) {
	max := MaxHandle(document)
	if max == math.MaxInt64 {
		return nil, fmt.Errorf("document handle space exhausted: %w", models.ErrInvalidInput)
	}
	start := max + 1
	if start < DefaultStartHandle {
		start = DefaultStartHandle
	}
	return NewAllocator(start), nil
}

// Next returns a fresh handle.
func (a *Allocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	return id
}

// Peek returns the handle the next call to Next will return.
func (a *Allocator) Peek() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next
}

// MaxHandle returns the largest block handle declared in document, or 0.
func MaxHandle(document string) int64 {
	var max int64
	for _, m := range blockHeaderRe.FindAllStringSubmatch(document, -1) {
		id, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}
		if id > max {
			max = id
		}
	}
	return max
}
