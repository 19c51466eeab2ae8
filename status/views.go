package status

// Code, Text and Alias are the single-attribute representations of a status.
type (
	Code  int
	Text  string
	Alias string
)

// Named pairs a view value with the key of the status it belongs to.
type Named[T any] struct {
	Key   string
	Value T
}

// View is a key-indexed projection of a registry onto one attribute.
type View[T any] struct {
	name  string
	items []Named[T]
	index map[string]int
}

func newView[T any](name string, entries []Entry, project func(Entry) T) *View[T] {
	v := &View[T]{
		name:  name,
		items: make([]Named[T], len(entries)),
		index: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		v.items[i] = Named[T]{Key: e.Key, Value: project(e)}
		v.index[e.Key] = i
	}
	return v
}

// Name identifies the view in NotFoundError values.
func (v *View[T]) Name() string { return v.name }

// Lookup returns the view value stored under key.
func (v *View[T]) Lookup(key string) (Named[T], error) {
	if i, ok := v.index[key]; ok {
		return v.items[i], nil
	}
	return Named[T]{}, notFound(v.name, key)
}

// All returns the view's values in ascending code order.
func (v *View[T]) All() []Named[T] { return append([]Named[T](nil), v.items...) }

func (v *View[T]) Len() int { return len(v.items) }

// Views of the default registry.
var (
	Codes   = std.Codes()
	Texts   = std.Texts()
	Aliases = std.Aliases()
)

// Convert moves a value from one view to another through its key.
func Convert[S, T any](from Named[S], to *View[T]) (Named[T], error) {
	return to.Lookup(from.Key)
}

func CodeFromText(t Named[Text]) (Named[Code], error) { return Convert(t, Codes) }
func CodeFromAlias(a Named[Alias]) (Named[Code], error) { return Convert(a, Codes) }
func TextFromCode(c Named[Code]) (Named[Text], error) { return Convert(c, Texts) }
func TextFromAlias(a Named[Alias]) (Named[Text], error) { return Convert(a, Texts) }
func AliasFromCode(c Named[Code]) (Named[Alias], error) { return Convert(c, Aliases) }
func AliasFromText(t Named[Text]) (Named[Alias], error) { return Convert(t, Aliases) }
