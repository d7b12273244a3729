package lists_test

import (
	"reflect"
	"testing"

	"contact-api/pkg/lists"
)

const (
	contactToken    = "a4428028-1751-4c8e-8e40-0f2ab839131d"
	newsletterToken = "5d80e417-542e-422a-b15e-0b478dcd894c"
)

func newResolver() *lists.Resolver {
	return lists.NewResolver(map[string]int{
		contactToken:    1,
		newsletterToken: 2,
	})
}

func TestResolve(t *testing.T) {
	r := newResolver()

	if id, ok := r.Resolve(contactToken); !ok || id != 1 {
		t.Fatalf("Resolve(contact): got (%d, %v) want (1, true)", id, ok)
	}
	if id, ok := r.Resolve(newsletterToken); !ok || id != 2 {
		t.Fatalf("Resolve(newsletter): got (%d, %v) want (2, true)", id, ok)
	}
	if _, ok := r.Resolve("not-a-known-token"); ok {
		t.Fatal("Resolve(unknown): got ok=true want false")
	}
}

func TestResolveAll(t *testing.T) {
	r := newResolver()

	tests := []struct {
		name   string
		tokens []string
		want   []int
	}{
		{"contact only", []string{contactToken}, []int{1}},
		{"contact and newsletter", []string{contactToken, newsletterToken}, []int{1, 2}},
		{"unmapped tokens dropped silently", []string{contactToken, "bogus", newsletterToken}, []int{1, 2}},
		{"all unmapped", []string{"bogus", "also-bogus"}, []int{}},
		{"empty input", nil, []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.ResolveAll(tc.tokens)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ResolveAll(%v): got %v want %v", tc.tokens, got, tc.want)
			}
		})
	}
}

func TestResolverCopiesMapping(t *testing.T) {
	mapping := map[string]int{contactToken: 1}
	r := lists.NewResolver(mapping)

	mapping[contactToken] = 99
	mapping["new-token"] = 3

	if id, _ := r.Resolve(contactToken); id != 1 {
		t.Fatalf("resolver saw mutation of source mapping: got %d want 1", id)
	}
	if _, ok := r.Resolve("new-token"); ok {
		t.Fatal("resolver saw token added after construction")
	}
}
