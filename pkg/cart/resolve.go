package cart

import (
	"sort"
	"strings"

	"babylone/pkg/money"
)

// AddonView is the slice of an addon the cart cares about.
type AddonView struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price money.Cents `json:"price"`
}

// ItemView is the slice of a menu item the cart cares about.
type ItemView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Cents `json:"price"`
	Addons      []AddonView `json:"addons"`
}

// Resolve builds the cart line for an item with the chosen addons.
// Chosen ids that don't exist on the item are ignored (stale UI state is not
// an error) and duplicates collapse, so the result only depends on which of
// the item's addons are in the set, never on selection order.
func Resolve(item ItemView, chosenAddonIDs []string) Line {
	chosen := make(map[string]bool, len(chosenAddonIDs))
	for _, id := range chosenAddonIDs {
		chosen[id] = true
	}

	selected := make([]AddonView, 0, len(chosen))
	unit := item.Price
	for _, a := range item.Addons {
		if chosen[a.ID] {
			selected = append(selected, a)
			unit += a.Price
		}
	}

	ids := make([]string, len(selected))
	for i, a := range selected {
		ids[i] = a.ID
	}

	return Line{
		LineID:         LineID(item.ID, ids),
		ItemID:         item.ID,
		Name:           item.Name,
		Description:    item.Description,
		UnitBasePrice:  item.Price,
		SelectedAddons: selected,
		UnitPrice:      unit,
		Qty:            1,
	}
}

// LineID is the identity key for one item configuration: the item id alone
// when nothing is selected, otherwise the item id followed by the addon ids
// in lexicographic order. Toggling an addon off and on reproduces the key.
func LineID(itemID string, addonIDs []string) string {
	if len(addonIDs) == 0 {
		return itemID
	}
	sorted := make([]string, len(addonIDs))
	copy(sorted, addonIDs)
	sort.Strings(sorted)
	return itemID + "-" + strings.Join(sorted, "-")
}
