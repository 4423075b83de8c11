package grip

import "testing"

func TestIntoStatic(t *testing.T) {
	caps := StringCaps()
	tests := []struct {
		name  string
		val   Val[string, string, string]
		owned bool
	}{
		{"ephemeral clones to owned", FromEphemeral[string, string]("v"), true},
		{"static passes through", FromStatic[string, string]("v"), false},
		{"owned passes through", FromOwned[string, string]("v"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.val.IntoStatic(caps)
			if l.IsOwned() != tt.owned {
				t.Fatalf("IsOwned() = %v, want %v", l.IsOwned(), tt.owned)
			}
			w := WidenLasting[string](l)
			if got := w.Ref(caps); got != "v" {
				t.Errorf("contents = %q, want %q", got, "v")
			}
		})
	}
}

func TestToStaticDetachesOwned(t *testing.T) {
	caps := SliceCaps[byte]()
	v := FromOwned[[]byte, []byte]([]byte("keep"))

	l := v.ToStatic(caps)
	o, ok := l.Owned()
	if !ok {
		t.Fatal("ToStatic of owned case did not stay owned")
	}
	o[0] = 'X'
	if got := v.Ref(caps); string(got) != "keep" {
		t.Errorf("source modified through clone: %q", got)
	}
}

func TestIntoOwningIdempotent(t *testing.T) {
	caps := StringCaps()
	tests := []struct {
		name string
		val  Val[string, string, string]
	}{
		{"ephemeral", FromEphemeral[string, string]("v")},
		{"static", FromStatic[string, string]("v")},
		{"owned", FromOwned[string, string]("v")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := WidenOwn[string, string](tt.val.IntoOwning(caps))
			if !once.IsOwned() {
				t.Fatalf("case after IntoOwning = %s", once.Case())
			}
			twice := WidenOwn[string, string](once.IntoOwning(caps))
			if !twice.IsOwned() || twice.Ref(caps) != "v" {
				t.Errorf("second IntoOwning changed the value: %q", twice.Ref(caps))
			}
		})
	}
}

func TestToOwningDetachesOwned(t *testing.T) {
	caps := SliceCaps[byte]()
	v := FromOwned[[]byte, []byte]([]byte("keep"))

	own := v.ToOwning(caps)
	(*own.Mut())[0] = 'X'
	if got := v.Ref(caps); string(got) != "keep" {
		t.Errorf("source modified through clone: %q", got)
	}
}

func TestReference(t *testing.T) {
	caps := StringCaps()
	tests := []struct {
		name   string
		val    Val[string, string, string]
		static bool
	}{
		{"ephemeral stays a view", FromEphemeral[string, string]("v"), false},
		{"static stays static", FromStatic[string, string]("v"), true},
		{"owned is borrowed", FromOwned[string, string]("v"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.val.Reference(caps)
			if r.IsStatic() != tt.static {
				t.Fatalf("IsStatic() = %v, want %v", r.IsStatic(), tt.static)
			}
			w := WidenRef[string](r)
			if got := w.Ref(caps); got != "v" {
				t.Errorf("contents = %q, want %q", got, "v")
			}
		})
	}
}

func TestEphemeralView(t *testing.T) {
	caps := StringCaps()
	for _, v := range []Val[string, string, string]{
		FromEphemeral[string, string]("v"),
		FromStatic[string, string]("v"),
		FromOwned[string, string]("v"),
	} {
		e := v.EphemeralView(caps)
		if got := e.Unwrap(); got != "v" {
			t.Errorf("%s EphemeralView = %q, want %q", v.Case(), got, "v")
		}
	}
}
