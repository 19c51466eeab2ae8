package status

import (
	"errors"
	"testing"
)

func TestViewsShareKeys(t *testing.T) {
	if Codes.Len() != Default().Len() || Texts.Len() != Default().Len() || Aliases.Len() != Default().Len() {
		t.Fatalf("view sizes differ: codes=%d texts=%d aliases=%d registry=%d",
			Codes.Len(), Texts.Len(), Aliases.Len(), Default().Len())
	}

	for _, e := range Default().Entries() {
		c, err := Codes.Lookup(e.Key)
		if err != nil {
			t.Fatalf("Codes.Lookup(%q) error = %v", e.Key, err)
		}
		tx, err := Texts.Lookup(e.Key)
		if err != nil {
			t.Fatalf("Texts.Lookup(%q) error = %v", e.Key, err)
		}
		a, err := Aliases.Lookup(e.Key)
		if err != nil {
			t.Fatalf("Aliases.Lookup(%q) error = %v", e.Key, err)
		}
		if int(c.Value) != e.Code || string(tx.Value) != e.Text || string(a.Value) != e.Alias {
			t.Fatalf("views disagree for %s: %v %q %q", e.Key, c.Value, tx.Value, a.Value)
		}
	}
}

func TestViewCrossConversionRoundTrip(t *testing.T) {
	for _, c := range Codes.All() {
		text, err := TextFromCode(c)
		if err != nil {
			t.Fatalf("TextFromCode(%v) error = %v", c, err)
		}
		alias, err := AliasFromText(text)
		if err != nil {
			t.Fatalf("AliasFromText(%v) error = %v", text, err)
		}
		back, err := CodeFromAlias(alias)
		if err != nil {
			t.Fatalf("CodeFromAlias(%v) error = %v", alias, err)
		}
		if back != c {
			t.Fatalf("round trip = %+v, want %+v", back, c)
		}

		viaText, err := CodeFromText(text)
		if err != nil || viaText != c {
			t.Fatalf("CodeFromText(%v) = %+v, %v", text, viaText, err)
		}
		aliasFromCode, err := AliasFromCode(c)
		if err != nil || aliasFromCode != alias {
			t.Fatalf("AliasFromCode(%v) = %+v, %v", c, aliasFromCode, err)
		}
		textFromAlias, err := TextFromAlias(alias)
		if err != nil || textFromAlias != text {
			t.Fatalf("TextFromAlias(%v) = %+v, %v", alias, textFromAlias, err)
		}
	}
}

func TestViewScenario(t *testing.T) {
	code, err := Codes.Lookup("HTTP_404")
	if err != nil {
		t.Fatalf("Codes.Lookup() error = %v", err)
	}
	if code.Value != 404 {
		t.Fatalf("code = %d, want 404", code.Value)
	}
	text, err := TextFromCode(code)
	if err != nil {
		t.Fatalf("TextFromCode() error = %v", err)
	}
	if text.Value != "Not Found" {
		t.Fatalf("text = %q, want Not Found", text.Value)
	}
	alias, err := AliasFromCode(code)
	if err != nil {
		t.Fatalf("AliasFromCode() error = %v", err)
	}
	if alias.Value != "HTTP_NOT_FOUND" {
		t.Fatalf("alias = %q, want HTTP_NOT_FOUND", alias.Value)
	}
}

func TestViewLookupMiss(t *testing.T) {
	_, err := Texts.Lookup("HTTP_999")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Texts.Lookup(HTTP_999) error = %v, want *NotFoundError", err)
	}
	if nf.View != "text" || nf.Input != "HTTP_999" {
		t.Fatalf("unexpected NotFoundError: %+v", nf)
	}
}

func TestConvertIntoSmallerView(t *testing.T) {
	small, err := NewRegistry([]Entry{{Key: "HTTP_200", Code: 200, Text: "OK", Alias: "HTTP_OK"}})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	teapot, err := Codes.Lookup("HTTP_418")
	if err != nil {
		t.Fatalf("Codes.Lookup(HTTP_418) error = %v", err)
	}
	_, err = Convert(teapot, small.Aliases())
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.View != "alias" || nf.Input != "HTTP_418" {
		t.Fatalf("Convert() error = %v, want alias miss for HTTP_418", err)
	}

	ok, err := Convert(Named[Code]{Key: "HTTP_200", Value: 200}, small.Texts())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if ok.Value != "OK" {
		t.Fatalf("Convert() = %q, want OK", ok.Value)
	}
}

func TestViewAllIsOrderedCopy(t *testing.T) {
	all := Aliases.All()
	if all[0].Key != "HTTP_100" {
		t.Fatalf("first alias key = %q, want HTTP_100", all[0].Key)
	}
	all[0].Value = "HTTP_CHANGED"
	if got, _ := Aliases.Lookup("HTTP_100"); got.Value != "HTTP_CONTINUE" {
		t.Fatalf("All() exposed internal storage: %q", got.Value)
	}
}
