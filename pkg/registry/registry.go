package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/enfa"
	"github.com/aretw0/automata/pkg/ports"
)

// ErrUnknownAutomaton is returned when no automaton is registered under a name.
var ErrUnknownAutomaton = errors.New("unknown automaton")

// Kind tells which execution model backs an entry.
type Kind string

const (
	KindDeterministic Kind = "dfa"
	KindEpsilon       Kind = "enfa"
)

// Names of the automata registered by NewDefault.
const (
	ModCounter = "mod-counter"
	EpsilonAB  = "epsilon-ab"
)

// Entry describes a registered automaton.
type Entry struct {
	Name        string          `json:"name"`
	Kind        Kind            `json:"kind"`
	Description string          `json:"description"`
	Alphabet    domain.Alphabet `json:"-"`
	Evaluator   ports.Evaluator `json:"-"`

	// Fingerprint identifies the configuration the evaluator was built
	// from. Results stored under one fingerprint are never served for another.
	Fingerprint string `json:"-"`
}

// ResultKey returns the store key for input evaluated by this entry.
func (e Entry) ResultKey(input string) string {
	namespace := e.Name
	if e.Fingerprint != "" {
		namespace += "@" + e.Fingerprint
	}
	return ports.ResultKey(namespace, input)
}

// Registry manages the available automata.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// NewDefault registers the zeros/ones counter (with the given moduli) and
// the reference epsilon automaton.
func NewDefault(zeroMod, oneMod int) (*Registry, error) {
	table, err := dfa.NewModCounter(zeroMod, oneMod)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", ModCounter, err)
	}
	relation := enfa.Reference()

	r := NewRegistry()
	r.Register(Entry{
		Name: ModCounter,
		Kind: KindDeterministic,
		Description: fmt.Sprintf("strings over {0,1} whose count of '0' is divisible by %d and count of '1' by %d",
			zeroMod, oneMod),
		Alphabet:    table.Alphabet(),
		Evaluator:   table,
		Fingerprint: fmt.Sprintf("%dx%d", zeroMod, oneMod),
	})
	r.Register(Entry{
		Name:        EpsilonAB,
		Kind:        KindEpsilon,
		Description: "a* or b*a over {a,b}, via epsilon branches from the start state",
		Alphabet:    relation.Alphabet(),
		Evaluator:   relation,
	})
	return r, nil
}

// Register adds an automaton to the registry.
// If an entry with the same name exists, it is overwritten.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.Name] = entry
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownAutomaton, name)
	}
	return entry, nil
}

// Entries returns every registered entry sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
