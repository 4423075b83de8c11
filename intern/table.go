package intern

// Table is a bounded string interner. It admits new strings until the
// limit is reached, after which only already-interned strings succeed.
// It is the reference Interner implementation; callers needing eviction
// or sharing across goroutines should bring their own.
type Table struct {
	limit int
	m     map[string]string
}

// NewTable creates a Table admitting at most limit distinct strings.
// A non-positive limit means unbounded.
func NewTable(limit int) *Table {
	return &Table{
		limit: limit,
		m:     map[string]string{},
	}
}

// Preload admits strings up front, subject to the limit.
func (t *Table) Preload(ss ...string) {
	for _, s := range ss {
		t.Intern(s)
	}
}

// Intern returns the canonical copy of s. Admission of a new string fails
// only when the table is full.
func (t *Table) Intern(s string) (string, bool) {
	if c, ok := t.m[s]; ok {
		return c, true
	}
	if t.limit > 0 && len(t.m) >= t.limit {
		return "", false
	}
	t.m[s] = s
	return s, true
}

// Len reports how many distinct strings are interned.
func (t *Table) Len() int {
	return len(t.m)
}
