package set

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCreateEmpty(t *testing.T) {
	s := New[int]()
	if s.Len() != 0 {
		t.Errorf("expected empty set to have length 0, has %d", s.Len())
	}
	if !s.Begin().Equal(s.End()) {
		t.Error("expected begin() of empty set to equal end()")
	}
	if !s.Find(7).IsEnd() {
		t.Error("did not expect to find 7 in empty set")
	}
}

// --- Find ------------------------------------------------------------------

func TestSetFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	//
	s := createSetForTest()
	it := s.Find(3)
	if it.IsEnd() || it.Key() != 3 {
		t.Fatalf("expected to find 3, found %v", it)
	}
	if !s.Find(4).Equal(s.End()) {
		t.Error("expected find(4) to return end()")
	}
}

func TestSetFindRegistersIterators(t *testing.T) {
	s := createSetForTest()
	issued := s.reg.issued
	s.Find(1)
	s.Find(4)
	if s.reg.issued != issued+2 {
		t.Errorf("expected 2 more registered iterators, have %d", s.reg.issued-issued)
	}
	s.Contains(1)
	s.Begin()
	if s.reg.issued != issued+2 {
		t.Errorf("expected Contains/Begin not to register iterators, have %d", s.reg.issued-issued)
	}
}

// --- Insert ----------------------------------------------------------------

func TestSetInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	//
	s := New[int]()
	for _, k := range sample {
		it, inserted := s.Insert(k)
		require.True(t, inserted, "expected %d to be inserted", k)
		require.Equal(t, k, it.Key())
	}
	t.Logf("tree = %s", printTree(s))
	assert.Equal(t, []int{1, 2, 3, 5, 7, 9}, slices.Collect(s.All()))
	assert.Equal(t, 6, s.Len())
}

func TestSetInsertPresentKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	s := createSetForTest()
	root := s.root
	before := s.Find(5)
	issued := s.reg.issued
	it, inserted := s.Insert(5)
	if inserted {
		t.Error("did not expect 5 to be inserted twice")
	}
	if !it.Equal(before) || it.Key() != 5 {
		t.Errorf("expected iterator to existing 5, have %v", it)
	}
	if s.root != root || s.Len() != 6 {
		t.Error("expected insert of present key to leave set unchanged")
	}
	if !before.Valid() {
		t.Error("expected no-op insert not to invalidate iterators")
	}
	if s.reg.issued != issued+1 {
		t.Errorf("expected no-op insert to register its iterator, have %d registered", s.reg.issued)
	}
}

func TestSetInsertDescendsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	comparisons := 0
	s := NewFunc(func(a, b int) int {
		comparisons++
		return a - b
	})
	for _, k := range sample {
		s.Insert(k)
	}
	comparisons = 0
	s.Insert(4) // compared against 2, 5 and 3; the sentinel needs no comparison
	if comparisons != 3 {
		t.Errorf("expected insert of 4 to take 3 comparisons, took %d", comparisons)
	}
	comparisons = 0
	s.Insert(5) // present
	if comparisons != 2 {
		t.Errorf("expected insert of present 5 to take 2 comparisons, took %d", comparisons)
	}
}

func TestSetInsertCustomOrder(t *testing.T) {
	s := NewFunc(func(a, b string) int { return strings.Compare(b, a) })
	for _, k := range []string{"a", "c", "b"} {
		s.Insert(k)
	}
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(s.All()))
	assert.Equal(t, "c", s.Min().WithDefault(""))
}

// --- Erase -----------------------------------------------------------------

func TestSetEraseScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	//
	s := createSetForTest()
	s.Erase(s.Find(2))
	t.Logf("tree = %s", printTree(s))
	assert.Equal(t, []int{1, 3, 5, 7, 9}, slices.Collect(s.All()))
	assert.True(t, s.Find(2).Equal(s.End()))
	assert.Equal(t, 5, s.Len())
}

func TestSetEraseShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	expected := []string{
		"((1)3(5(7(9))))", // erase 2: replaced by successor 3
		"((1)3(7(9)))",    // erase 5: no left child
		"((1)7(9))",
		"((1)9)",
		"(9)", // erase 1: leaf
		"",
	}
	s := createSetForTest()
	for i, k := range sample {
		s.Erase(s.Find(k))
		if s.String() != expected[i] {
			t.Errorf("after erase of %d: expected %q, have %q", k, expected[i], s.String())
		}
	}
	if s.Len() != 0 {
		t.Errorf("expected set to be empty, has %d elements", s.Len())
	}
}

func TestSetEraseOnlyLeftChild(t *testing.T) {
	s := New[int]()
	s.Insert(5)
	s.Insert(3)
	s.Insert(1)
	three := s.root.left.left
	s.Erase(s.Find(5))
	if s.String() != "((1)3)" {
		t.Errorf("expected ((1)3), have %q", s.String())
	}
	if s.root.left == three {
		t.Error("expected promoted left child to be a fresh copy")
	}
	if s.root.left.left != three.left {
		t.Error("expected children of promoted node to be shared")
	}
}

func TestSetEraseForeignIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	s := createSetForTest()
	other := createSetForTest()
	assert.Panics(t, func() { s.Erase(other.Find(3)) }, "erase with foreign iterator")
	assert.Panics(t, func() { s.Erase(s.End()) }, "erase at end()")
	stale := s.Begin()
	s.Insert(0)
	assert.Panics(t, func() { s.Erase(stale) }, "erase at outdated version")
	found := s.Find(3)
	s.Insert(4)
	assert.Panics(t, func() { s.Erase(found) }, "erase at invalidated iterator")
}

// --- Copy, assign, release -------------------------------------------------

func TestSetCloneIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	a := createSetForTest()
	b := a.Clone()
	assert.Equal(t, "test'", b.name)
	assert.Equal(t, "snapshot", a.Clone(Named[int]("snapshot")).name)
	require.Same(t, a.root.left, b.root.left)
	require.NotSame(t, a.root, b.root)
	a.Insert(4)
	a.Erase(a.Find(7))
	b.Insert(8)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 9}, slices.Collect(a.All()))
	assert.Equal(t, []int{1, 2, 3, 5, 7, 8, 9}, slices.Collect(b.All()))
}

func TestSetAssign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	a := New[int]()
	a.Insert(100)
	ai := a.Find(100)
	end := a.End()
	b := createSetForTest()
	a.Assign(b)
	assert.False(t, ai.Valid())
	assert.False(t, end.Equal(a.End()), "end() of a should change on assignment")
	assert.Same(t, b.root.left, a.root.left)
	assert.Equal(t, 6, a.Len())
	b.Erase(b.Find(1))
	assert.Equal(t, []int{1, 2, 3, 5, 7, 9}, slices.Collect(a.All()))
	a.Assign(a)
	assert.Equal(t, []int{1, 2, 3, 5, 7, 9}, slices.Collect(a.All()))
}

func TestSetRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	s := createSetForTest()
	it := s.Find(3)
	s.Release()
	assert.False(t, it.Valid())
	assert.Panics(t, func() { s.Len() })
	assert.Panics(t, func() { s.Insert(1) })
	assert.Equal(t, "<released>", s.String())
}

// --- Walking ---------------------------------------------------------------

func TestSetMinMaxContains(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Max().IsNothing())
	assert.Equal(t, -1, s.Min().WithDefault(-1))
	for _, k := range sample {
		s.Insert(k)
	}
	var lo int
	switch m := s.Min().Match(); m {
	case m.Just(&lo):
	case m.Nothing():
		t.Fatal("expected non-empty set to have a minimum")
	}
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, s.Max().WithDefault(-1))
	s.Erase(s.Find(9))
	assert.Equal(t, 7, s.Max().WithDefault(-1))
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(8))
}

func TestSetBackward(t *testing.T) {
	s := createSetForTest()
	assert.Equal(t, []int{9, 7, 5, 3, 2, 1}, slices.Collect(s.Backward()))
	assert.Empty(t, slices.Collect(New[int]().Backward()))
	var firstTwo []int
	for k := range s.Backward() {
		firstTwo = append(firstTwo, k)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, []int{9, 7}, firstTwo)
}

func TestSetVersionsStaySorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(4711))
	s := New[int]()
	ref := map[int]bool{}
	type version struct {
		set  *Set[int]
		keys []int
	}
	var versions []version
	for i := 0; i < 500; i++ {
		k := rnd.Intn(100)
		if ref[k] && rnd.Intn(3) == 0 {
			s.Erase(s.Find(k))
			delete(ref, k)
		} else {
			_, inserted := s.Insert(k)
			require.Equal(t, !ref[k], inserted, "insert of %d", k)
			ref[k] = true
		}
		if i%25 == 0 {
			versions = append(versions, version{set: s.Clone(), keys: sortedKeys(ref)})
		}
	}
	assert.Equal(t, sortedKeys(ref), slices.Collect(s.All()))
	assert.Equal(t, len(ref), s.Len())
	for i, v := range versions {
		keys := slices.Collect(v.set.All())
		if !slices.Equal(keys, v.keys) {
			t.Errorf("version %d changed: expected %v, have %v", i, v.keys, keys)
		}
		if !slices.IsSorted(keys) {
			t.Errorf("version %d is not sorted: %v", i, keys)
		}
		back := slices.Collect(v.set.Backward())
		slices.Reverse(back)
		if !slices.Equal(keys, back) {
			t.Errorf("version %d walks differently backwards: %v", i, back)
		}
	}
}

func sortedKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
