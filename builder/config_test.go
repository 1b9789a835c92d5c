// Unit tests for builderConfig and BuilderOption.

package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options apply in order and that
// a nil scheme is ignored.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().id(7); got != "7" {
		t.Errorf("default id: expected \"7\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs()).id(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs(), WithPrefix("n")).id(3); got != "n3" {
		t.Errorf("WithPrefix override: expected \"n3\", got %q", got)
	}
	if got := newBuilderConfig(WithIDScheme(nil)).id(5); got != "5" {
		t.Errorf("WithIDScheme(nil): expected default \"5\", got %q", got)
	}

	cfg := newBuilderConfig(WithPrefix("v"))
	cfg.scope = "g1."
	if got := cfg.id(0); got != "g1.v0" {
		t.Errorf("scoped id: expected \"g1.v0\", got %q", got)
	}
}

// TestRNGOptions verifies seeding and explicit RNG injection.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Errorf("default rng should be nil")
	}

	a := newBuilderConfig(WithSeed(7)).rng.Int63()
	b := newBuilderConfig(WithSeed(7)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed(7) not reproducible: %d != %d", a, b)
	}

	r := rand.New(rand.NewSource(1))
	if newBuilderConfig(WithRand(r)).rng != r {
		t.Errorf("WithRand: rng not attached")
	}
}

// TestOptionPanics verifies that option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithRand(nil)":    func() { WithRand(nil) },
		"WithDangling(-1)": func() { WithDangling(-1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
