package points

import "testing"

func TestCompute_Truncation(t *testing.T) {
	p := DefaultPolicy()

	// 2.5 * 15 = 37.5 -> 37，向零截断而不是四舍五入
	if got := p.Compute(WasteTypeDry, 2.5); got != 37 {
		t.Fatalf("dry 2.5kg: expected 37, got %d", got)
	}
	if got := p.Compute(WasteTypeWet, 3.0); got != 30 {
		t.Fatalf("wet 3.0kg: expected 30, got %d", got)
	}
}

func TestCompute_UnknownType(t *testing.T) {
	p := DefaultPolicy()

	if got := p.Compute("plastic", 5); got != 0 {
		t.Fatalf("unknown type should earn 0 points, got %d", got)
	}
	if got := p.Compute("", 5); got != 0 {
		t.Fatalf("empty type should earn 0 points, got %d", got)
	}
}

func TestCompute_NonPositiveWeight(t *testing.T) {
	p := DefaultPolicy()

	if got := p.Compute(WasteTypeDry, 0); got != 0 {
		t.Fatalf("zero weight should earn 0 points, got %d", got)
	}
	if got := p.Compute(WasteTypeWet, -1.5); got != 0 {
		t.Fatalf("negative weight should earn 0 points, got %d", got)
	}
}

func TestCompute_Pure(t *testing.T) {
	p := Policy{DryRate: 20, WetRate: 5}

	first := p.Compute(WasteTypeDry, 1.99)
	for i := 0; i < 100; i++ {
		if got := p.Compute(WasteTypeDry, 1.99); got != first {
			t.Fatalf("compute is not deterministic: %d != %d", got, first)
		}
	}
	if first != 39 {
		t.Fatalf("dry 1.99kg at rate 20: expected 39, got %d", first)
	}
}

func TestValidWasteType(t *testing.T) {
	if !ValidWasteType("dry") || !ValidWasteType("wet") {
		t.Fatal("dry/wet should be valid waste types")
	}
	if ValidWasteType("glass") {
		t.Fatal("glass should not be a valid waste type")
	}
}
