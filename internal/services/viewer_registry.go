package services

import (
	"sync"

	"github.com/google/uuid"

	"arenastreams/internal/structures"
)

const (
	// DefaultMaxBulkSlugs caps one bulk lookup; excess slugs are silently
	// truncated.
	DefaultMaxBulkSlugs = 200

	// subscriptionBuffer is the per-subscriber channel depth. A full buffer
	// drops the send: a later snapshot supersedes the lost one, which is the
	// accepted weak-consistency property of the stream.
	subscriptionBuffer = 8
)

// ViewerSubscription is one live-count stream. It belongs to exactly one
// registry entry and is destroyed on Unsubscribe, which closes C.
type ViewerSubscription struct {
	ID   uuid.UUID
	Slug string
	ch   chan int
}

// C delivers count snapshots: the current count immediately on subscribe,
// then a new value whenever the slug's count changes.
func (s *ViewerSubscription) C() <-chan int {
	return s.ch
}

type ViewerRegistryInterface interface {
	Subscribe(slug string) *ViewerSubscription
	Unsubscribe(sub *ViewerSubscription)
	Count(slug string) int
	BulkCount(slugs []string) map[string]int
	SlugCount() int
	SubscriberCount() int
}

// ViewerRegistry tracks, per match slug, the set of open live-count
// connections. Entries are created on first subscribe and deleted when the
// last subscriber leaves, so an idle process holds no state.
type ViewerRegistry struct {
	mu          sync.Mutex
	entries     map[string]map[uuid.UUID]*ViewerSubscription
	subscribers int
	maxBulk     int
}

func NewViewerRegistry(conf *structures.Config) ViewerRegistryInterface {
	maxBulk := DefaultMaxBulkSlugs
	if conf != nil && conf.Viewers.MaxBulkSlugs > 0 {
		maxBulk = conf.Viewers.MaxBulkSlugs
	}
	return &ViewerRegistry{
		entries: make(map[string]map[uuid.UUID]*ViewerSubscription),
		maxBulk: maxBulk,
	}
}

// Subscribe registers a new connection. The updated count (which includes the
// new subscriber) is pushed to every subscriber of the slug, so the newcomer
// gets its initial snapshot and the rest see the join.
func (r *ViewerRegistry) Subscribe(slug string) *ViewerSubscription {
	sub := &ViewerSubscription{
		ID:   uuid.New(),
		Slug: slug,
		ch:   make(chan int, subscriptionBuffer),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[slug]
	if !ok {
		entry = make(map[uuid.UUID]*ViewerSubscription)
		r.entries[slug] = entry
	}
	entry[sub.ID] = sub
	r.subscribers++
	r.broadcastLocked(entry)
	return sub
}

// Unsubscribe removes the connection and broadcasts the decrement. Empty
// entries are deleted. Safe to call more than once.
func (r *ViewerRegistry) Unsubscribe(sub *ViewerSubscription) {
	if sub == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sub.Slug]
	if !ok {
		return
	}
	if _, ok := entry[sub.ID]; !ok {
		return
	}
	delete(entry, sub.ID)
	r.subscribers--
	close(sub.ch)

	if len(entry) == 0 {
		delete(r.entries, sub.Slug)
		return
	}
	r.broadcastLocked(entry)
}

func (r *ViewerRegistry) broadcastLocked(entry map[uuid.UUID]*ViewerSubscription) {
	count := len(entry)
	for _, sub := range entry {
		select {
		case sub.ch <- count:
		default:
		}
	}
}

func (r *ViewerRegistry) Count(slug string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries[slug])
}

// BulkCount resolves up to maxBulk slugs in one call; unknown slugs report
// zero.
func (r *ViewerRegistry) BulkCount(slugs []string) map[string]int {
	if len(slugs) > r.maxBulk {
		slugs = slugs[:r.maxBulk]
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int, len(slugs))
	for _, slug := range slugs {
		counts[slug] = len(r.entries[slug])
	}
	return counts
}

func (r *ViewerRegistry) SlugCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *ViewerRegistry) SubscriberCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.subscribers
}
