package depgraph

import "testing"

func indexOf[E comparable](seq []E, e E) int {
	for i, x := range seq {
		if x == e {
			return i
		}
	}
	return -1
}

func TestOrderedEntitiesPlacesDependenciesFirst(t *testing.T) {
	g := New[string]()
	g.AddDependency("a", "b")
	g.AddDependency("b", "c")
	g.EnsureTracked("c")

	res := g.OrderedEntities()
	if res.Status != StatusOK {
		t.Fatalf("expected StatusOK, got cycle %v -> %v", res.From, res.To)
	}
	if indexOf(res.Sequence, "b") > indexOf(res.Sequence, "a") {
		t.Fatalf("b must come before a: %v", res.Sequence)
	}
	if indexOf(res.Sequence, "c") > indexOf(res.Sequence, "b") {
		t.Fatalf("c must come before b: %v", res.Sequence)
	}
}

func TestOrderedEntitiesDetectsCycle(t *testing.T) {
	g := New[string]()
	g.AddDependency("a", "b")
	g.AddDependency("b", "a")

	res := g.OrderedEntities()
	if res.Status != StatusCycle {
		t.Fatalf("expected a cycle, got sequence %v", res.Sequence)
	}
}

func TestOrderedEntitiesFanInRespectsEdgeOrder(t *testing.T) {
	g := New[string]()
	// root depends on x then y; x and y have no deps of their own.
	g.AddDependency("root", "x")
	g.AddDependency("root", "y")

	res := g.OrderedEntities()
	if res.Status != StatusOK {
		t.Fatalf("unexpected cycle")
	}
	if indexOf(res.Sequence, "x") > indexOf(res.Sequence, "y") {
		t.Fatalf("x must be ordered before y per edge insertion order: %v", res.Sequence)
	}
}

func TestEnsureTrackedIsIdempotent(t *testing.T) {
	g := New[int]()
	g.EnsureTracked(1)
	g.EnsureTracked(1)
	res := g.OrderedEntities()
	if len(res.Sequence) != 1 {
		t.Fatalf("expected a single tracked entity, got %v", res.Sequence)
	}
}

func TestAddDependencyDeduplicatesEdges(t *testing.T) {
	g := New[string]()
	g.AddDependency("a", "b")
	g.AddDependency("a", "b")
	if len(g.entries["a"].deps) != 1 {
		t.Fatalf("expected deduplicated edge list, got %v", g.entries["a"].deps)
	}
}

func TestSelfDependencyIsACycle(t *testing.T) {
	g := New[string]()
	g.AddDependency("a", "a")
	res := g.OrderedEntities()
	if res.Status != StatusCycle {
		t.Fatalf("expected self-loop to be reported as a cycle")
	}
}
