package gamedata

import (
	"math"
	"testing"
)

func TestFromIDRoundTripsEveryKnownValue(t *testing.T) {
	known := 0
	for raw := math.MinInt16; raw <= math.MaxInt16; raw++ {
		id := FromID(int16(raw))
		if !id.Known() {
			if id != Unknown {
				t.Fatalf("FromID(%d) = %v, not Unknown", raw, id)
			}
			continue
		}
		known++
		if got := id.ID(); got != int16(raw) {
			t.Fatalf("FromID(%d).ID() = %d", raw, got)
		}
	}

	blocks, items := Default().Len()
	if known != blocks+items {
		t.Errorf("%d values resolved, want %d", known, blocks+items)
	}
}

func TestFromIDNamespaces(t *testing.T) {
	tests := []struct {
		name string
		raw  int16
		ns   Namespace
		id   int16
	}{
		{"empty_hand", -1, NamespaceUnknown, -1},
		{"air", 0, NamespaceBlock, 0},
		{"stone", 1, NamespaceBlock, 1},
		{"pumpkin_lantern", 91, NamespaceBlock, 91},
		{"unassigned_block", 200, NamespaceUnknown, -1},
		{"block_range_top", 255, NamespaceUnknown, -1},
		{"shovel_steel", 256, NamespaceItem, 256},
		{"fish_cooked", 350, NamespaceItem, 350},
		{"unassigned_item", 351, NamespaceUnknown, -1},
		{"record_cat", 2001, NamespaceItem, 2001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromID(tt.raw)
			if got.Namespace() != tt.ns {
				t.Errorf("FromID(%d).Namespace() = %s, want %s", tt.raw, got.Namespace(), tt.ns)
			}
			if got.ID() != tt.id {
				t.Errorf("FromID(%d).ID() = %d, want %d", tt.raw, got.ID(), tt.id)
			}
		})
	}
}

func TestItemBiasAgreesWithTables(t *testing.T) {
	if ItemShovelSteel != 1 {
		t.Errorf("ItemShovelSteel index = %d, want 1", ItemShovelSteel)
	}
	if got := ItemIdentifier(ItemShovelSteel).ID(); got != 256 {
		t.Errorf("ItemIdentifier(ItemShovelSteel).ID() = %d, want 256", got)
	}
	if b, ok := FromID(7).Block(); !ok || b != BlockBedrock {
		t.Errorf("FromID(7).Block() = %v, %v; want bedrock", b, ok)
	}
	if it, ok := FromID(280).Item(); !ok || it != ItemStick {
		t.Errorf("FromID(280).Item() = %v, %v; want stick", it, ok)
	}
}

func TestIdentifierString(t *testing.T) {
	if got := BlockIdentifier(BlockGrass).String(); got != "block:grass(2)" {
		t.Errorf("String() = %q", got)
	}
	if got := Unknown.String(); got != "unknown" {
		t.Errorf("Unknown.String() = %q", got)
	}
}
