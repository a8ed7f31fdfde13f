package core

import (
	"fmt"
	"slices"
	"sort"

	"github.com/samber/lo"

	"github.com/xonecas/termchat/internal/constants"
)

// Registry holds the known contacts and the bounded MRU list.
// It is not safe for concurrent use; State guards it.
type Registry struct {
	all         []string
	recent      []string
	initialized bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Initialize populates the registry from the transport's contact list,
// sorted ascending. Empty and duplicate names are dropped.
func (r *Registry) Initialize(names []string) error {
	if r.initialized {
		return ErrAlreadyInitialized
	}

	cleaned := lo.Uniq(lo.Compact(names))
	if len(cleaned) == 0 {
		return ErrEmptyContactList
	}
	sort.Strings(cleaned)

	r.all = cleaned
	r.recent = nil
	r.initialized = true
	return nil
}

// Initialized reports whether Initialize has succeeded.
func (r *Registry) Initialized() bool {
	return r.initialized
}

// Touch promotes name to the front of both lists. Names never seen before
// are accepted as they are: anything that shows up in a live event is a
// contact.
func (r *Registry) Touch(name string) {
	r.all = promote(r.all, name)
	r.recent = promote(r.recent, name)
	if len(r.recent) > constants.RecentCapacity {
		r.recent = r.recent[:constants.RecentCapacity]
	}
}

// ListAll returns a copy of all contacts in current order.
func (r *Registry) ListAll() []string {
	return slices.Clone(r.all)
}

// ListRecent returns a copy of the recent contacts, most recent first.
func (r *Registry) ListRecent() []string {
	return slices.Clone(r.recent)
}

// Len returns the number of known contacts.
func (r *Registry) Len() int {
	return len(r.all)
}

// ResolveByIndex returns the contact at 1-based position n of the current order.
func (r *Registry) ResolveByIndex(n int) (string, error) {
	if n < 1 || n > len(r.all) {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, n, len(r.all))
	}
	return r.all[n-1], nil
}

func promote(list []string, name string) []string {
	if i := slices.Index(list, name); i >= 0 {
		list = slices.Delete(list, i, i+1)
	}
	return slices.Insert(list, 0, name)
}
