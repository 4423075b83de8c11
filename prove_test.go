package grip

import "testing"

// Each constructor must satisfy exactly one of the three split operations,
// and the two misses must hand back complementary shapes holding the
// payload.
func TestSplitExhaustive(t *testing.T) {
	tests := []struct {
		name string
		val  Val[string, string, string]
		cas  Case
	}{
		{"ephemeral", FromEphemeral[string, string]("p"), EphemeralCase},
		{"static", FromStatic[string, string]("p"), StaticCase},
		{"owned", FromOwned[string, string]("p"), OwnedCase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, okE := tt.val.TrySplitEphemeral()
			_, _, okS := tt.val.TrySplitStatic()
			_, _, okO := tt.val.TrySplitOwned()

			hits := 0
			for _, ok := range []bool{okE, okS, okO} {
				if ok {
					hits++
				}
			}
			if hits != 1 {
				t.Fatalf("%d splits succeeded, want exactly 1", hits)
			}
			switch tt.cas {
			case EphemeralCase:
				if !okE {
					t.Error("TrySplitEphemeral missed the populated case")
				}
			case StaticCase:
				if !okS {
					t.Error("TrySplitStatic missed the populated case")
				}
			case OwnedCase:
				if !okO {
					t.Error("TrySplitOwned missed the populated case")
				}
			}
		})
	}
}

func TestSplitHitPayload(t *testing.T) {
	e, _, ok := FromEphemeral[string, string]("e").TrySplitEphemeral()
	if !ok || e.Unwrap() != "e" {
		t.Errorf("ephemeral split = %q, %v", e.Unwrap(), ok)
	}
	s, _, ok := FromStatic[string, string]("s").TrySplitStatic()
	if !ok || s.Unwrap() != "s" {
		t.Errorf("static split = %q, %v", s.Unwrap(), ok)
	}
	o, _, ok := FromOwned[string, string]("o").TrySplitOwned()
	if !ok || o.Unwrap() != "o" {
		t.Errorf("owned split = %q, %v", o.Unwrap(), ok)
	}
}

func TestSplitMissRest(t *testing.T) {
	t.Run("owned misses ephemeral", func(t *testing.T) {
		_, rest, ok := FromOwned[string, string]("o").TrySplitEphemeral()
		if ok {
			t.Fatal("split matched the wrong case")
		}
		if !rest.IsOwned() {
			t.Error("rest lost the owned case")
		}
		if got, ok := rest.Owned(); !ok || got != "o" {
			t.Errorf("rest payload = %q, %v", got, ok)
		}
	})
	t.Run("static misses owned", func(t *testing.T) {
		_, rest, ok := FromStatic[string, string]("s").TrySplitOwned()
		if ok {
			t.Fatal("split matched the wrong case")
		}
		if !rest.IsStatic() {
			t.Error("rest lost the static case")
		}
		if got, ok := rest.SharedRef(); !ok || got != "s" {
			t.Errorf("rest payload = %q, %v", got, ok)
		}
	})
	t.Run("ephemeral misses static", func(t *testing.T) {
		_, rest, ok := FromEphemeral[string, string]("e").TrySplitStatic()
		if ok {
			t.Fatal("split matched the wrong case")
		}
		if got, ok := rest.View(); !ok || got != "e" {
			t.Errorf("rest payload = %q, %v", got, ok)
		}
	})
}

func TestUnwrapDirect(t *testing.T) {
	if e, _, ok := FromEphemeral[string, string]("e").TryUnwrapEphemeral(); !ok || e != "e" {
		t.Errorf("TryUnwrapEphemeral = %q, %v", e, ok)
	}
	if s, _, ok := FromStatic[string, string]("s").TryUnwrapStatic(); !ok || s != "s" {
		t.Errorf("TryUnwrapStatic = %q, %v", s, ok)
	}
	if o, _, ok := FromOwned[string, string]("o").TryUnwrapOwned(); !ok || o != "o" {
		t.Errorf("TryUnwrapOwned = %q, %v", o, ok)
	}
}

func TestShapeSecondSplit(t *testing.T) {
	// Two-case shapes narrow once more to single-case shapes.
	r := RefOfShared[string]("s")
	if _, sh, ok := r.TrySplitEphemeral(); ok || sh.Unwrap() != "s" {
		t.Errorf("Ref second split = %v, %q", ok, sh.Unwrap())
	}
	l := LastingOwned[string]("o")
	if own, _, ok := l.TrySplitOwned(); !ok || own.Unwrap() != "o" {
		t.Errorf("Lasting second split = %v, %q", ok, own.Unwrap())
	}
	u := UnsharedEph[string]("e")
	if _, eph, ok := u.TrySplitOwned(); ok || eph.Unwrap() != "e" {
		t.Errorf("Unshared second split = %v, %q", ok, eph.Unwrap())
	}
}

func TestOwnShapePointers(t *testing.T) {
	o := OwnOf("a")
	*o.Mut() = "b"
	if *o.Ref() != "b" {
		t.Errorf("Ref() = %q after Mut write, want %q", *o.Ref(), "b")
	}
	if o.Unwrap() != "b" {
		t.Errorf("Unwrap() = %q, want %q", o.Unwrap(), "b")
	}
}
