package cli

import (
	"context"
	"fmt"
	"sort"
)

// Tutorials lists the educational contents grouped by category.
func (a *App) Tutorials(ctx context.Context) error {
	contents := a.contents.List(ctx)
	if len(contents) == 0 {
		printlnFn("No tutorials available.")
		return nil
	}

	byCategory := map[string][]int{}
	for i, c := range contents {
		byCategory[c.Category] = append(byCategory[c.Category], i)
	}
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		printlnFn(fmt.Sprintf("%s:", cat))
		for _, i := range byCategory[cat] {
			c := contents[i]
			printlnFn(fmt.Sprintf("  %s — %s", c.Title, c.URL))
		}
	}
	return nil
}
