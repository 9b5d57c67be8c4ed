package autodiff_test

import (
	"testing"

	"github.com/flowgrad-ml/flowgrad/internal/autodiff"
	"github.com/flowgrad-ml/flowgrad/internal/backend/scalar"
)

func nodes(ns ...*scalar.Node) []*scalar.Node {
	return ns
}

// TestNewNode tests leaf construction defaults.
func TestNewNode(t *testing.T) {
	a := autodiff.NewNode(scalar.Scalar(3))
	if a.Data != 3 {
		t.Errorf("Data = %v, want 3", a.Data)
	}
	if a.Grad != 0 {
		t.Errorf("Grad = %v, want 0", a.Grad)
	}
	if !a.RequiresGrad {
		t.Error("RequiresGrad = false, want true")
	}
	if len(a.Parents()) != 0 {
		t.Errorf("Parents() has %d entries, want 0", len(a.Parents()))
	}
	if a.HasBackward() {
		t.Error("leaf should not have a backward closure")
	}
}

// TestNewConstant tests non-differentiable leaf construction.
func TestNewConstant(t *testing.T) {
	a := autodiff.NewConstant(scalar.Scalar(3))
	if a.RequiresGrad {
		t.Error("RequiresGrad = true, want false")
	}
	if a.Grad != 0 {
		t.Errorf("Grad = %v, want default 0", a.Grad)
	}
}

// TestForward_Wiring tests that Module.Forward attaches parents and a
// backward closure to the output but leaves the inputs untouched.
func TestForward_Wiring(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	a := autodiff.NewNode(scalar.Scalar(3))
	b := autodiff.NewNode(scalar.Scalar(4))

	c := sum.Forward(nodes(a, b))[0]

	if c.Data != 7 {
		t.Errorf("c.Data = %v, want 7", c.Data)
	}
	if c.Grad != 0 {
		t.Errorf("c.Grad = %v, want 0 before Backward", c.Grad)
	}
	if got := c.Parents(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("c.Parents() = %v, want [a b]", got)
	}
	if len(a.Parents()) != 0 || len(b.Parents()) != 0 {
		t.Error("inputs must not gain parents")
	}
	if !c.HasBackward() {
		t.Error("c should have a backward closure")
	}
	if a.HasBackward() || b.HasBackward() {
		t.Error("leaves must not have backward closures")
	}
}

// TestBackward_PairwiseSum tests gradients for c = a + b.
func TestBackward_PairwiseSum(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	a := autodiff.NewNode(scalar.Scalar(3))
	b := autodiff.NewNode(scalar.Scalar(4))

	c := sum.Forward(nodes(a, b))[0]
	c.Backward()

	if c.Grad != 1 {
		t.Errorf("c.Grad = %v, want 1", c.Grad)
	}
	if a.Grad != 1 {
		t.Errorf("a.Grad = %v, want 1", a.Grad)
	}
	if b.Grad != 1 {
		t.Errorf("b.Grad = %v, want 1", b.Grad)
	}
}

// TestBackward_VariadicSum tests one operation over ten inputs.
func TestBackward_VariadicSum(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	const n = 10
	inputs := make([]*scalar.Node, 0, n)
	for i := 1; i <= n; i++ {
		inputs = append(inputs, autodiff.NewNode(scalar.Scalar(i)))
	}

	c := sum.Forward(inputs)[0]
	c.Backward()

	if c.Data != n*(n+1)/2 {
		t.Errorf("c.Data = %v, want %d", c.Data, n*(n+1)/2)
	}
	if c.Grad != 1 {
		t.Errorf("c.Grad = %v, want 1", c.Grad)
	}
	for i, in := range inputs {
		if in.Grad != 1 {
			t.Errorf("inputs[%d].Grad = %v, want 1", i, in.Grad)
		}
	}
}

// TestBackward_FanOut tests gradient accumulation when one node feeds two
// downstream operations: c = a + b, d = c + b.
func TestBackward_FanOut(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	a := autodiff.NewNode(scalar.Scalar(10))
	b := autodiff.NewNode(scalar.Scalar(100))

	c := sum.Forward(nodes(a, b))[0]
	d := sum.Forward(nodes(c, b))[0]

	if c.Data != 110 {
		t.Errorf("c.Data = %v, want 110", c.Data)
	}
	if d.Data != 210 {
		t.Errorf("d.Data = %v, want 210", d.Data)
	}

	d.Backward()

	if d.Grad != 1 {
		t.Errorf("d.Grad = %v, want 1", d.Grad)
	}
	if c.Grad != 1 {
		t.Errorf("c.Grad = %v, want 1", c.Grad)
	}
	if b.Grad != 2 {
		t.Errorf("b.Grad = %v, want 2 (paths through c and d)", b.Grad)
	}
	if a.Grad != 1 {
		t.Errorf("a.Grad = %v, want 1", a.Grad)
	}
}

// TestBackward_MixedDifferentiability tests that non-differentiable nodes
// block traversal and receive no gradient:
//
//	a constant, b differentiable
//	c = a + a (requires no gradient, excluded from traversal)
//	d = a + b
//	e = b + b
//	f = c + d + e
func TestBackward_MixedDifferentiability(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	a := autodiff.NewConstant(scalar.Scalar(10))
	b := autodiff.NewNode(scalar.Scalar(100))

	c := sum.Forward(nodes(a, a))[0]
	d := sum.Forward(nodes(a, b))[0]
	e := sum.Forward(nodes(b, b))[0]
	f := sum.Forward(nodes(c, d, e))[0]

	if c.RequiresGrad {
		t.Error("c.RequiresGrad = true, want false (all inputs constant)")
	}
	if c.HasBackward() {
		t.Error("c should not have a backward closure")
	}

	f.Backward()

	if a.Grad != 0 {
		t.Errorf("a.Grad = %v, want 0", a.Grad)
	}
	if b.Grad != 3 {
		t.Errorf("b.Grad = %v, want 3", b.Grad)
	}
	if c.Grad != 0 {
		t.Errorf("c.Grad = %v, want 0 (excluded from traversal)", c.Grad)
	}
	if d.Grad != 1 {
		t.Errorf("d.Grad = %v, want 1", d.Grad)
	}
	if e.Grad != 1 {
		t.Errorf("e.Grad = %v, want 1", e.Grad)
	}
}

// TestBackward_OnConstant tests that Backward on a non-differentiable node
// is a no-op.
func TestBackward_OnConstant(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	a := autodiff.NewConstant(scalar.Scalar(3))
	b := autodiff.NewConstant(scalar.Scalar(4))

	c := sum.Forward(nodes(a, b))[0]
	c.Backward()

	if c.Grad != 0 {
		t.Errorf("c.Grad = %v, want 0 (Backward must be a no-op)", c.Grad)
	}
	if a.Grad != 0 || b.Grad != 0 {
		t.Errorf("leaf grads = %v, %v, want 0, 0", a.Grad, b.Grad)
	}
}

// TestBackward_Accumulates tests that repeated Backward calls keep
// accumulating: the engine never zeroes gradients between calls.
func TestBackward_Accumulates(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	a := autodiff.NewNode(scalar.Scalar(3))
	b := autodiff.NewNode(scalar.Scalar(4))

	c := sum.Forward(nodes(a, b))[0]
	c.Backward()
	c.Backward()

	// The seed resets c.Grad to 1, but the leaves keep their first pass.
	if c.Grad != 1 {
		t.Errorf("c.Grad = %v, want 1", c.Grad)
	}
	if a.Grad != 2 {
		t.Errorf("a.Grad = %v, want 2 after two passes", a.Grad)
	}
	if b.Grad != 2 {
		t.Errorf("b.Grad = %v, want 2 after two passes", b.Grad)
	}
}

// TestBackward_DeepChain tests gradient flow through a longer chain of
// dependent operations.
func TestBackward_DeepChain(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	x := autodiff.NewNode(scalar.Scalar(1))

	out := x
	const depth = 50
	for i := 0; i < depth; i++ {
		out = sum.Forward(nodes(out, x))[0]
	}

	if out.Data != depth+1 {
		t.Errorf("out.Data = %v, want %d", out.Data, depth+1)
	}

	out.Backward()

	// out = (depth+1) * x, one copy of x per sum plus the original chain.
	if x.Grad != depth+1 {
		t.Errorf("x.Grad = %v, want %d", x.Grad, depth+1)
	}
}

// TestForward_ParentsSnapshot tests that mutating the caller's input slice
// after Forward does not change the recorded parents.
func TestForward_ParentsSnapshot(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	a := autodiff.NewNode(scalar.Scalar(1))
	b := autodiff.NewNode(scalar.Scalar(2))
	inputs := nodes(a, b)

	c := sum.Forward(inputs)[0]
	inputs[0] = autodiff.NewNode(scalar.Scalar(99))

	if got := c.Parents(); got[0] != a {
		t.Error("c.Parents()[0] changed after caller mutated its slice")
	}

	c.Backward()
	if a.Grad != 1 {
		t.Errorf("a.Grad = %v, want 1 (closure must use the snapshot)", a.Grad)
	}
}

// TestBackward_ProductRule tests data-dependent gradients through Mul:
// f = (a * b) + b, so df/da = b and df/db = a + 1.
func TestBackward_ProductRule(t *testing.T) {
	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
	mul := autodiff.NewModule[scalar.Scalar](scalar.Mul{})
	a := autodiff.NewNode(scalar.Scalar(3))
	b := autodiff.NewNode(scalar.Scalar(5))

	ab := mul.Forward(nodes(a, b))[0]
	f := sum.Forward(nodes(ab, b))[0]

	if f.Data != 20 {
		t.Errorf("f.Data = %v, want 20", f.Data)
	}

	f.Backward()

	if a.Grad != 5 {
		t.Errorf("a.Grad = %v, want 5", a.Grad)
	}
	if b.Grad != 4 {
		t.Errorf("b.Grad = %v, want 4", b.Grad)
	}
}
