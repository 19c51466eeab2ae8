package status

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestRegistryLookupEveryKey(t *testing.T) {
	r := Default()
	for _, e := range r.Entries() {
		got, err := r.Lookup(e.Key)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", e.Key, err)
		}
		if got != e {
			t.Fatalf("Lookup(%q) = %+v, want %+v", e.Key, got, e)
		}
	}
}

func TestRegistryLookupAliasRoundTrip(t *testing.T) {
	r := Default()
	for _, e := range r.Entries() {
		got, err := r.LookupAlias(e.Alias)
		if err != nil {
			t.Fatalf("LookupAlias(%q) error = %v", e.Alias, err)
		}
		if got != e {
			t.Fatalf("LookupAlias(%q) = %+v, want %+v", e.Alias, got, e)
		}

		// keys are not aliases, so this goes through the key fallback
		got, err = r.LookupAlias(e.Key)
		if err != nil {
			t.Fatalf("LookupAlias(%q) fallback error = %v", e.Key, err)
		}
		if got != e {
			t.Fatalf("LookupAlias(%q) fallback = %+v, want %+v", e.Key, got, e)
		}
	}
}

func TestRegistryScenarios(t *testing.T) {
	r := Default()

	ok, err := r.Lookup("HTTP_200")
	if err != nil {
		t.Fatalf("Lookup(HTTP_200) error = %v", err)
	}
	if ok.Code != 200 || ok.Text != "OK" || ok.Alias != "HTTP_OK" {
		t.Fatalf("Lookup(HTTP_200) = %+v", ok)
	}

	nf, err := r.LookupAlias("HTTP_NOT_FOUND")
	if err != nil {
		t.Fatalf("LookupAlias(HTTP_NOT_FOUND) error = %v", err)
	}
	if nf.Code != 404 || nf.Text != "Not Found" {
		t.Fatalf("LookupAlias(HTTP_NOT_FOUND) = %+v", nf)
	}

	fallback, err := r.LookupAlias("HTTP_200")
	if err != nil {
		t.Fatalf("LookupAlias(HTTP_200) error = %v", err)
	}
	if fallback.Code != 200 {
		t.Fatalf("LookupAlias(HTTP_200).Code = %d, want 200", fallback.Code)
	}

	ise, err := r.LookupCode(500)
	if err != nil {
		t.Fatalf("LookupCode(500) error = %v", err)
	}
	if ise.Alias != "HTTP_INTERNAL_SERVER_ERROR" {
		t.Fatalf("alias of 500 = %q", ise.Alias)
	}
	back, err := r.LookupAlias(ise.Alias)
	if err != nil {
		t.Fatalf("LookupAlias(%q) error = %v", ise.Alias, err)
	}
	if back.Key != ise.Key {
		t.Fatalf("round trip key = %q, want %q", back.Key, ise.Key)
	}
}

func TestRegistryNotFound(t *testing.T) {
	r := Default()

	_, err := r.Lookup("HTTP_999")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Lookup(HTTP_999) error = %v, want *NotFoundError", err)
	}
	if nf.View != "key" || nf.Input != "HTTP_999" {
		t.Fatalf("unexpected NotFoundError: %+v", nf)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected errors.Is(err, ErrNotFound)")
	}

	_, err = r.LookupAlias("NOT_A_REAL_ALIAS")
	if !errors.As(err, &nf) || nf.View != "alias" || nf.Input != "NOT_A_REAL_ALIAS" {
		t.Fatalf("LookupAlias(NOT_A_REAL_ALIAS) error = %v", err)
	}

	if _, err := r.LookupCode(299); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LookupCode(299) error = %v, want ErrNotFound", err)
	}
}

func TestRegistryMatchingIsExact(t *testing.T) {
	r := Default()
	for _, in := range []string{"http_not_found", " HTTP_NOT_FOUND", "HTTP_NOT_FOUND ", "HTTP_NOT", "404", "HTTP_"} {
		if _, err := r.LookupAlias(in); !errors.Is(err, ErrNotFound) {
			t.Fatalf("LookupAlias(%q) error = %v, want ErrNotFound", in, err)
		}
	}
}

func TestRegistryTableInvariants(t *testing.T) {
	r := Default()
	entries := r.Entries()
	if len(entries) < 40 {
		t.Fatalf("registry has %d entries, want at least 40", len(entries))
	}

	seen := map[Category]bool{}
	for i, e := range entries {
		if e.Text == "" {
			t.Fatalf("%s has empty text", e.Key)
		}
		if !strings.HasPrefix(e.Alias, "HTTP_") {
			t.Fatalf("%s alias %q lacks HTTP_ prefix", e.Key, e.Alias)
		}
		if i > 0 && entries[i-1].Code >= e.Code {
			t.Fatalf("entries out of order at %s", e.Key)
		}
		seen[e.Category()] = true
	}
	for _, c := range []Category{Informational, Success, Redirection, ClientError, ServerError} {
		if !seen[c] {
			t.Fatalf("no entries in %s", c)
		}
	}
}

func TestRegistryEntriesIsACopy(t *testing.T) {
	r := Default()
	entries := r.Entries()
	entries[0].Text = "mutated"

	e, err := r.Lookup(entries[0].Key)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if e.Text == "mutated" {
		t.Fatalf("Entries() exposed internal storage")
	}
}

func TestRegistryInCategory(t *testing.T) {
	got := Default().InCategory(ClientError)
	if len(got) == 0 {
		t.Fatalf("InCategory(ClientError) is empty")
	}
	for _, e := range got {
		if e.Code < 400 || e.Code > 499 {
			t.Fatalf("InCategory(ClientError) returned %s", e)
		}
	}
	if got[0].Code != 400 {
		t.Fatalf("first client error = %d, want 400", got[0].Code)
	}
}

func TestNewRegistryValidation(t *testing.T) {
	valid := Entry{Key: "HTTP_200", Code: 200, Text: "OK", Alias: "HTTP_OK"}

	cases := map[string][]Entry{
		"code out of range":    {{Key: "HTTP_99", Code: 99, Text: "Low", Alias: "HTTP_LOW"}},
		"key mismatch":         {{Key: "HTTP_201", Code: 200, Text: "OK", Alias: "HTTP_OK"}},
		"empty text":           {{Key: "HTTP_200", Code: 200, Alias: "HTTP_OK"}},
		"alias without prefix": {{Key: "HTTP_200", Code: 200, Text: "OK", Alias: "OK"}},
		"duplicate code":       {valid, valid},
		"duplicate alias":      {valid, {Key: "HTTP_201", Code: 201, Text: "Created", Alias: "HTTP_OK"}},
		"alias equals key":     {valid, {Key: "HTTP_201", Code: 201, Text: "Created", Alias: "HTTP_200"}},
	}
	for name, entries := range cases {
		if _, err := NewRegistry(entries); !errors.Is(err, ErrInvalidEntry) {
			t.Fatalf("%s: NewRegistry() error = %v, want ErrInvalidEntry", name, err)
		}
	}
}

func TestNewRegistrySortsByCode(t *testing.T) {
	r, err := NewRegistry([]Entry{
		{Key: "HTTP_404", Code: 404, Text: "Not Found", Alias: "HTTP_NOT_FOUND"},
		{Key: "HTTP_200", Code: 200, Text: "OK", Alias: "HTTP_OK"},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	entries := r.Entries()
	if entries[0].Code != 200 || entries[1].Code != 404 {
		t.Fatalf("Entries() = %v, want ascending codes", entries)
	}
	if _, err := r.Lookup("HTTP_500"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("custom registry leaked default entries: %v", err)
	}
}

func TestMustRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustRegistry([]Entry{{Key: "HTTP_600", Code: 600, Text: "x", Alias: "HTTP_X"}})
}

func TestRegistryConcurrentLookups(t *testing.T) {
	r := Default()
	entries := r.Entries()

	const workers = 16
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range entries {
				if _, err := r.LookupAlias(e.Alias); err != nil {
					errCh <- err
					return
				}
				if _, err := Texts.Lookup(e.Key); err != nil {
					errCh <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Errorf("concurrent lookup failed: %v", err)
	}
}
