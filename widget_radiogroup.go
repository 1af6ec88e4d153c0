package gui

import "fmt"

// radioItem draws one radio button of a group and updates the selection.
func (ctx *Context) radioItem(groupLabel, groupID string, items []string, idx int, selectedIndex *int) bool {
	itemID := fmt.Sprintf("%s_%d", groupLabel, idx)
	if groupID != "" {
		itemID = fmt.Sprintf("%s_%d", groupID, idx)
	}
	if !ctx.RadioButton(items[idx], idx == *selectedIndex, WithID(itemID)) {
		return false
	}
	if idx == *selectedIndex {
		return false
	}
	*selectedIndex = idx
	ctx.Output.PushEvent(OutputEvent{
		Kind:  EventValueChanged,
		ID:    ctx.GetID(itemID),
		Value: items[idx],
	})
	return true
}

// RadioGroup draws a group of radio buttons, vertically by default or in
// columns with WithColumns. Returns true if the selection changed.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.RadioGroup("Quality", &selectedIndex, items) {
//	    applyQuality(selectedIndex)
//	}
func (ctx *Context) RadioGroup(label string, selectedIndex *int, items []string, opts ...Option) bool {
	o := applyOptions(opts)
	columns := GetOpt(o, OptColumns)
	optID := GetOpt(o, OptID)

	changed := false
	ctx.VStack(Gap(ctx.style.ItemSpacing))(func() {
		if label != "" {
			ctx.Text(label)
		}

		if columns <= 1 {
			for i := range items {
				if ctx.radioItem(label, optID, items, i, selectedIndex) {
					changed = true
				}
			}
			return
		}

		// Column-major: item i lands in column i/itemsPerRow.
		itemsPerRow := (len(items) + columns - 1) / columns
		for row := 0; row < itemsPerRow; row++ {
			ctx.HStack(Gap(ctx.style.ItemSpacing * 2))(func() {
				for col := 0; col < columns; col++ {
					idx := row + col*itemsPerRow
					if idx >= len(items) {
						continue
					}
					if ctx.radioItem(label, optID, items, idx, selectedIndex) {
						changed = true
					}
				}
			})
		}
	})
	return changed
}

// RadioGroupHorizontal draws a group of radio buttons in one row.
// Returns true if the selection changed.
func (ctx *Context) RadioGroupHorizontal(label string, selectedIndex *int, items []string, opts ...Option) bool {
	o := applyOptions(opts)
	optID := GetOpt(o, OptID)

	changed := false
	ctx.VStack(Gap(ctx.style.ItemSpacing))(func() {
		if label != "" {
			ctx.Text(label)
		}
		ctx.HStack(Gap(ctx.style.ItemSpacing * 2))(func() {
			for i := range items {
				if ctx.radioItem(label, optID, items, i, selectedIndex) {
					changed = true
				}
			}
		})
	})
	return changed
}
