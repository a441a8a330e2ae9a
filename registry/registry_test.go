/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package registry_test

import (
	"errors"
	"testing"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/config"
	dixerrors "dirpx.dev/dix/errors"
	"dirpx.dev/dix/registry"
)

// constFactory returns a factory producing a fixed value.
func constFactory(v any) apis.Factory {
	return func(apis.Resolver) (any, error) { return v, nil }
}

func newReg() apis.Registry {
	return registry.New(config.DefaultConfig())
}

func TestRegister_OverwriteAndIntrospection(t *testing.T) {
	reg := newReg()

	if reg.IsRegisteredLocally("svc") {
		t.Fatal("IsRegisteredLocally on empty registry = true, want false")
	}

	reg.Register("svc", constFactory(1))
	if !reg.IsRegisteredLocally("svc") {
		t.Fatal("IsRegisteredLocally after Register = false, want true")
	}
	if got, _ := reg.Resolve("svc"); got != 1 {
		t.Fatalf("Resolve(svc) = %v, want 1", got)
	}

	// Re-registration overwrites.
	reg.Register("svc", constFactory(2))
	if got, _ := reg.Resolve("svc"); got != 2 {
		t.Fatalf("Resolve(svc) after overwrite = %v, want 2", got)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Chaining(t *testing.T) {
	reg := newReg().
		Register("a", constFactory("a")).
		Register("b", constFactory("b")).
		Remove("a")

	if reg.IsRegisteredLocally("a") {
		t.Fatal("Remove(a): still registered")
	}
	if !reg.IsRegisteredLocally("b") {
		t.Fatal("b lost after chained calls")
	}
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	reg := newReg()
	reg.Remove("never-registered") // must not panic or error

	parent := newReg().Register("svc", constFactory(1))
	child := parent.CreateChild()
	child.Remove("svc") // local only; parent untouched
	if !parent.IsRegisteredLocally("svc") {
		t.Fatal("Remove on child affected parent")
	}
	if got, _ := child.Resolve("svc"); got != 1 {
		t.Fatalf("Resolve(svc) via child after local Remove = %v, want 1", got)
	}
}

func TestReset_ClearsLocalOnly(t *testing.T) {
	parent := newReg().Register("p", constFactory(1))
	child := parent.CreateChild()
	child.Register("c", constFactory(2))

	child.Reset()
	if child.Count() != 0 {
		t.Fatalf("Count() after Reset = %d, want 0", child.Count())
	}
	if !child.IsRegistered("p") {
		t.Fatal("Reset severed parent bindings")
	}
}

func TestResolve_NotFound(t *testing.T) {
	reg := newReg()

	_, err := reg.Resolve("missing")
	if err == nil {
		t.Fatal("Resolve(missing): expected error, got nil")
	}
	if !errors.Is(err, dixerrors.ErrBindingNotFound) {
		t.Fatalf("errors.Is(err, ErrBindingNotFound) = false for %v", err)
	}

	var nfe *dixerrors.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("errors.As(*NotFoundError) failed for %T", err)
	}
	if nfe.Ident != "missing" {
		t.Fatalf("NotFoundError.Ident = %v, want missing", nfe.Ident)
	}
	if want := `dix(registry): no binding found for "missing"`; err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestResolve_FactoryErrorPassthrough(t *testing.T) {
	boom := errors.New("factory exploded")
	reg := newReg()
	reg.Register("inner", func(apis.Resolver) (any, error) {
		return nil, boom
	})
	reg.Register("outer", func(ctx apis.Resolver) (any, error) {
		return ctx.Resolve("inner")
	})

	// A failure deep in the chain surfaces identically, unwrapped.
	_, err := reg.Resolve("outer")
	if err != boom {
		t.Fatalf("Resolve(outer) error = %v, want the exact factory error", err)
	}
}

func TestResolve_NoMemoization(t *testing.T) {
	calls := 0
	reg := newReg()
	reg.Register("counter", func(apis.Resolver) (any, error) {
		calls++
		return calls, nil
	})

	if got, _ := reg.Resolve("counter"); got != 1 {
		t.Fatalf("first Resolve = %v, want 1", got)
	}
	if got, _ := reg.Resolve("counter"); got != 2 {
		t.Fatalf("second Resolve = %v, want 2 (factory must re-run)", got)
	}
}

func TestResolve_LocalPrecedence(t *testing.T) {
	parent := newReg().Register("svc", constFactory("parent"))
	child := parent.CreateChild()
	child.Register("svc", constFactory("child"))

	if got, _ := child.Resolve("svc"); got != "child" {
		t.Fatalf("Resolve(svc) on child = %v, want child (local precedence)", got)
	}
	if got, _ := parent.Resolve("svc"); got != "parent" {
		t.Fatalf("Resolve(svc) on parent = %v, want parent", got)
	}
}

func TestResolve_ParentFallback(t *testing.T) {
	parent := newReg().Register("svc", constFactory(42))
	child := parent.CreateChild()

	if child.IsRegisteredLocally("svc") {
		t.Fatal("child should not hold svc locally")
	}
	if !child.IsRegistered("svc") {
		t.Fatal("IsRegistered(svc) on child = false, want true via parent")
	}
	got, err := child.Resolve("svc")
	if err != nil {
		t.Fatalf("Resolve(svc) via child: %v", err)
	}
	if got != 42 {
		t.Fatalf("Resolve(svc) via child = %v, want 42", got)
	}
}

func TestResolve_DeepChainFallback(t *testing.T) {
	root := newReg().Register("svc", constFactory("root"))
	mid := root.CreateChild()
	leaf := mid.CreateChild()

	if got, _ := leaf.Resolve("svc"); got != "root" {
		t.Fatalf("Resolve(svc) on leaf = %v, want root", got)
	}
}

// TestResolve_ContextBoundToOrigin is the heart of the hierarchy contract: a
// factory registered in a shared parent, invoked on behalf of a child, must
// see the child's full scope so child-local overrides stay visible.
func TestResolve_ContextBoundToOrigin(t *testing.T) {
	parent := newReg()
	parent.Register("greeting", constFactory("hello"))
	parent.Register("greeter", func(ctx apis.Resolver) (any, error) {
		g, err := ctx.Resolve("greeting")
		if err != nil {
			return nil, err
		}
		return "say: " + g.(string), nil
	})

	child := parent.CreateChild()
	child.Register("greeting", constFactory("bonjour"))

	got, err := child.Resolve("greeter")
	if err != nil {
		t.Fatalf("Resolve(greeter) via child: %v", err)
	}
	if got != "say: bonjour" {
		t.Fatalf("Resolve(greeter) via child = %v, want say: bonjour (child override visible)", got)
	}

	// Same factory resolved on the parent sees the parent scope.
	if got, _ := parent.Resolve("greeter"); got != "say: hello" {
		t.Fatalf("Resolve(greeter) via parent = %v, want say: hello", got)
	}
}

func TestExtend_IdempotentAndOrdered(t *testing.T) {
	a := newReg().Register("svc", constFactory("a"))
	b := newReg().Register("svc", constFactory("b"))

	reg := newReg()
	reg.Extend(a, b)
	if got := len(reg.Parents()); got != 2 {
		t.Fatalf("len(Parents()) = %d, want 2", got)
	}

	// Re-adding a present parent is a no-op that keeps original position.
	reg.Extend(a)
	parents := reg.Parents()
	if len(parents) != 2 {
		t.Fatalf("len(Parents()) after re-Extend = %d, want 2", len(parents))
	}
	if parents[0] != a || parents[1] != b {
		t.Fatal("Extend changed relative parent order")
	}

	// Earlier-added parent wins the tie-break.
	if got, _ := reg.Resolve("svc"); got != "a" {
		t.Fatalf("Resolve(svc) = %v, want a (earlier parent wins)", got)
	}
}

func TestExtend_SkipsNilAndSelf(t *testing.T) {
	reg := newReg()
	reg.Extend(nil, reg)
	if got := len(reg.Parents()); got != 0 {
		t.Fatalf("len(Parents()) = %d, want 0", got)
	}
}

func TestExtend_TieBreakRecursive(t *testing.T) {
	// Flattened search order from leaf: leaf, a, aa, b. svc only in aa and
	// b: aa must win because a (and its parents) precede b.
	aa := newReg().Register("svc", constFactory("aa"))
	a := newReg().Extend(aa)
	b := newReg().Register("svc", constFactory("b"))

	leaf := newReg().Extend(a, b)
	if got, _ := leaf.Resolve("svc"); got != "aa" {
		t.Fatalf("Resolve(svc) = %v, want aa (depth-first, left-to-right)", got)
	}
}

func TestLookup_DoesNotInvoke(t *testing.T) {
	calls := 0
	reg := newReg()
	reg.Register("svc", func(apis.Resolver) (any, error) {
		calls++
		return nil, nil
	})

	if _, ok := reg.Lookup("svc"); !ok {
		t.Fatal("Lookup(svc) = false, want true")
	}
	if calls != 0 {
		t.Fatalf("Lookup invoked the factory %d times, want 0", calls)
	}
}

func TestCreateChild_DoesNotMutateParent(t *testing.T) {
	parent := newReg()
	child := parent.CreateChild()

	child.Register("only-child", constFactory(1))
	if parent.IsRegistered("only-child") {
		t.Fatal("parent sees child-local binding")
	}
	if got := len(parent.Parents()); got != 0 {
		t.Fatalf("parent gained parents: %d", got)
	}
	if got := len(child.Parents()); got != 1 {
		t.Fatalf("len(child.Parents()) = %d, want 1", got)
	}
}

// Mutation of a parent after child creation is immediately visible: no
// snapshot isolation is provided.
func TestParentMutationVisibleToChild(t *testing.T) {
	parent := newReg()
	child := parent.CreateChild()

	parent.Register("late", constFactory("late"))
	if got, _ := child.Resolve("late"); got != "late" {
		t.Fatalf("Resolve(late) via child = %v, want late", got)
	}

	parent.Remove("late")
	if child.IsRegistered("late") {
		t.Fatal("binding still visible after parent removal")
	}
}
