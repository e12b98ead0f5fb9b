package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/onemorebsmith/rollercoin-calc/src/simulator"
)

func TestParseMiner(t *testing.T) {
	m, err := parseMiner("500 Th:2.5")
	if err != nil {
		t.Fatal(err)
	}
	expected := simulator.Miner{Power: model.HashPower{Value: 500, Unit: model.UnitTh}, BonusPercent: 2.5}
	if d := cmp.Diff(expected, m); d != "" {
		t.Fatalf("unexpected miner: %s", d)
	}

	if m, err := parseMiner("1 Ph"); err != nil || m.BonusPercent != 0 {
		t.Fatalf("bonus should be optional, got %+v %v", m, err)
	}
	for _, bad := range []string{"fast:1", "1 Ph:lots"} {
		if _, err := parseMiner(bad); err == nil {
			t.Fatalf("expected %q to fail", bad)
		}
	}
}
