package model

import "slices"

// ItemStack is a quantity of one item template.
type ItemStack struct {
	ItemID int32
	Count  int64
}

// InventorySnapshot is a point-in-time copy of what a player carries and wears.
type InventorySnapshot struct {
	Items []ItemStack
	Armor []ItemStack
}

// Clone returns a deep copy.
func (s InventorySnapshot) Clone() InventorySnapshot {
	return InventorySnapshot{
		Items: slices.Clone(s.Items),
		Armor: slices.Clone(s.Armor),
	}
}
