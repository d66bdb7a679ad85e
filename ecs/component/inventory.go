package component

import "github.com/milk9111/maidmodes/item"

type Inventory struct {
	Items *item.Inventory
}

var InventoryComponent = NewComponent[Inventory]()
