package status

import (
	"sort"
	"strconv"
	"strings"
)

// AliasPrefix starts every key and alias.
const AliasPrefix = "HTTP_"

// Entry is one row of the registry.
type Entry struct {
	Key   string
	Code  int
	Text  string
	Alias string
}

// Category returns the class of the entry's code.
func (e Entry) Category() Category { return CategoryOf(e.Code) }

func (e Entry) String() string { return strconv.Itoa(e.Code) + " " + e.Text }

// KeyFor derives the key of a numeric code, e.g. 404 -> "HTTP_404".
func KeyFor(code int) string { return AliasPrefix + strconv.Itoa(code) }

// Registry is an immutable set of status entries indexed by key, alias and
// code. It is safe for concurrent use.
type Registry struct {
	entries []Entry
	byKey   map[string]int
	byAlias map[string]int
	byCode  map[int]int

	codes   *View[Code]
	texts   *View[Text]
	aliases *View[Alias]
}

// NewRegistry validates entries and indexes them in ascending code order.
func NewRegistry(entries []Entry) (*Registry, error) {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	r := &Registry{
		entries: sorted,
		byKey:   make(map[string]int, len(sorted)),
		byAlias: make(map[string]int, len(sorted)),
		byCode:  make(map[int]int, len(sorted)),
	}
	for i, e := range sorted {
		switch {
		case e.Code < 100 || e.Code > 599:
			return nil, invalidEntry(e, "code out of range")
		case e.Key != KeyFor(e.Code):
			return nil, invalidEntry(e, "key does not match code")
		case e.Text == "":
			return nil, invalidEntry(e, "empty text")
		case !strings.HasPrefix(e.Alias, AliasPrefix) || e.Alias == AliasPrefix:
			return nil, invalidEntry(e, "alias must start with "+AliasPrefix)
		}
		if _, dup := r.byCode[e.Code]; dup {
			return nil, invalidEntry(e, "duplicate code")
		}
		if _, dup := r.byAlias[e.Alias]; dup {
			return nil, invalidEntry(e, "duplicate alias "+e.Alias)
		}
		r.byKey[e.Key] = i
		r.byAlias[e.Alias] = i
		r.byCode[e.Code] = i
	}
	// An alias spelling a key would make LookupAlias ambiguous.
	for alias, i := range r.byAlias {
		if _, ok := r.byKey[alias]; ok {
			return nil, invalidEntry(sorted[i], "alias collides with key "+alias)
		}
	}

	r.codes = newView("code", sorted, func(e Entry) Code { return Code(e.Code) })
	r.texts = newView("text", sorted, func(e Entry) Text { return Text(e.Text) })
	r.aliases = newView("alias", sorted, func(e Entry) Alias { return Alias(e.Alias) })
	return r, nil
}

// MustRegistry is like NewRegistry but panics on invalid entries.
func MustRegistry(entries []Entry) *Registry {
	r, err := NewRegistry(entries)
	if err != nil {
		panic(err)
	}
	return r
}

var std = MustRegistry(table)

// Default returns the process-wide registry of IANA statuses.
func Default() *Registry { return std }

// Lookup returns the entry with the exact key, e.g. "HTTP_404".
func (r *Registry) Lookup(key string) (Entry, error) {
	if i, ok := r.byKey[key]; ok {
		return r.entries[i], nil
	}
	return Entry{}, notFound("key", key)
}

// LookupAlias returns the entry whose alias equals alias. When no alias
// matches, alias is retried as a key, so "HTTP_NOT_FOUND" and "HTTP_404"
// resolve to the same entry.
func (r *Registry) LookupAlias(alias string) (Entry, error) {
	if i, ok := r.byAlias[alias]; ok {
		return r.entries[i], nil
	}
	if e, err := r.Lookup(alias); err == nil {
		return e, nil
	}
	return Entry{}, notFound("alias", alias)
}

// LookupCode returns the entry for a numeric code.
func (r *Registry) LookupCode(code int) (Entry, error) {
	if i, ok := r.byCode[code]; ok {
		return r.entries[i], nil
	}
	return Entry{}, notFound("code", strconv.Itoa(code))
}

// Entries returns every entry in ascending code order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// InCategory returns the entries of one class, in code order.
func (r *Registry) InCategory(c Category) []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.Category() == c {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) Len() int { return len(r.entries) }

// Codes, Texts and Aliases expose the single-attribute views of r.
func (r *Registry) Codes() *View[Code] { return r.codes }
func (r *Registry) Texts() *View[Text] { return r.texts }
func (r *Registry) Aliases() *View[Alias] { return r.aliases }
