package formula

import "testing"

func TestAtomsDistinguishesVariableFromConstant(t *testing.T) {
	f := Construct(Variable(1, false), Impl, Constant(1, false))
	atoms := f.Atoms()
	if len(atoms) != 2 {
		t.Fatalf("expected 2 distinct atoms, got %d: %v", len(atoms), atoms)
	}
	if atoms[0] == atoms[1] {
		t.Errorf("Variable(1) and Constant(1) should not share an AtomKey")
	}
}

func TestEvalMatchesTruthTableForImplication(t *testing.T) {
	f := Construct(Variable(1, false), Impl, Variable(2, false))
	a := AtomKey{KindVariable, 1}
	b := AtomKey{KindVariable, 2}

	cases := []struct {
		a, b, want bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, true},
		{false, false, true},
	}
	for _, c := range cases {
		got := f.Eval(map[AtomKey]bool{a: c.a, b: c.b})
		if got != c.want {
			t.Errorf("Eval(A=%v,B=%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestEvalHonorsLeafNegation(t *testing.T) {
	f := Variable(1, true)
	if f.Eval(map[AtomKey]bool{{KindVariable, 1}: true}) {
		t.Error("!A under A=true should be false")
	}
	if !f.Eval(map[AtomKey]bool{{KindVariable, 1}: false}) {
		t.Error("!A under A=false should be true")
	}
}

func TestEvalCoversAllConnectives(t *testing.T) {
	a := AtomKey{KindVariable, 1}
	b := AtomKey{KindVariable, 2}
	assign := map[AtomKey]bool{a: true, b: false}

	cases := []struct {
		op   Op
		want bool
	}{
		{And, false},
		{Or, true},
		{Impl, false},
		{Xor, true},
		{Equiv, false},
	}
	for _, c := range cases {
		f := Construct(Variable(1, false), c.op, Variable(2, false))
		if got := f.Eval(assign); got != c.want {
			t.Errorf("Eval(A %v B) under A=true,B=false = %v, want %v", c.op, got, c.want)
		}
	}
}
