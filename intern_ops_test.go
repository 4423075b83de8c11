package grip

import (
	"testing"

	"github.com/gripkit/grip/intern"
)

func acceptAll() intern.Interner[string, string] {
	return intern.InternerFunc[string, string](func(s string) (string, bool) {
		return s, true
	})
}

func declineAll() intern.Interner[string, string] {
	return intern.InternerFunc[string, string](func(string) (string, bool) {
		return "", false
	})
}

func TestTryInternEphemeral(t *testing.T) {
	tests := []struct {
		name string
		val  Val[string, string, string]
		in   intern.Interner[string, string]
		ok   bool
		cas  Case
	}{
		{"ephemeral accepted", FromEphemeral[string, string]("e"), acceptAll(), true, StaticCase},
		{"ephemeral declined", FromEphemeral[string, string]("e"), declineAll(), false, EphemeralCase},
		{"static is already interned", FromStatic[string, string]("s"), declineAll(), true, StaticCase},
		{"owned is left alone", FromOwned[string, string]("o"), acceptAll(), false, OwnedCase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TryInternEphemeral(tt.val, tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got.Case() != tt.cas {
				t.Errorf("case = %s, want %s", got.Case(), tt.cas)
			}
			if Merge(got) != Merge(tt.val) {
				t.Errorf("contents = %q, want %q", Merge(got), Merge(tt.val))
			}
		})
	}
}

func TestTryIntern(t *testing.T) {
	caps := StringCaps()
	tbl := intern.NewTable(0)

	for _, v := range []Val[string, string, string]{
		FromEphemeral[string, string]("x"),
		FromStatic[string, string]("x"),
		FromOwned[string, string]("x"),
	} {
		got, ok := TryIntern(v, caps, intern.InternerFunc[string, string](tbl.Intern))
		if !ok {
			t.Fatalf("%s: interning declined by an unbounded table", v.Case())
		}
		if !got.IsStatic() {
			t.Errorf("%s: case after interning = %s", v.Case(), got.Case())
		}
		if Merge(got) != "x" {
			t.Errorf("%s: contents = %q", v.Case(), Merge(got))
		}
	}

	// A declined intern hands the input back unchanged.
	v := FromOwned[string, string]("o")
	got, ok := TryIntern(v, caps, declineAll())
	if ok || !got.IsOwned() || Merge(got) != "o" {
		t.Errorf("declined intern gave %v, %s, %q", ok, got.Case(), Merge(got))
	}
}

func TestInternOrTake(t *testing.T) {
	caps := StringCaps()

	t.Run("accepted lands static", func(t *testing.T) {
		l := InternOrTake(FromEphemeral[string, string]("e"), caps, acceptAll())
		if !l.IsStatic() {
			t.Fatal("accepted intern did not land in the static case")
		}
		if s, _ := l.SharedRef(); s != "e" {
			t.Errorf("shared ref = %q", s)
		}
	})

	t.Run("declined ephemeral is cloned", func(t *testing.T) {
		l := InternOrTake(FromEphemeral[string, string]("e"), caps, declineAll())
		if !l.IsOwned() {
			t.Fatal("declined intern did not fall back to owning")
		}
		if o, _ := l.Owned(); o != "e" {
			t.Errorf("owned = %q", o)
		}
	})

	t.Run("declined owned passes through", func(t *testing.T) {
		l := InternOrTake(FromOwned[string, string]("o"), caps, declineAll())
		if o, ok := l.Owned(); !ok || o != "o" {
			t.Errorf("owned = %q, %v", o, ok)
		}
	})
}
