// Package catalog derives what the storefront shows from the product list.
// Nothing here holds state or mutates its inputs.
package catalog

import (
	"fmt"
	"strings"

	"mobileHospital/domain"
)

type Tab string

const (
	TabAll         Tab = "All"
	TabMobile      Tab = Tab(domain.CategoryMobile)
	TabAccessories Tab = Tab(domain.CategoryAccessories)
)

var tabs = []Tab{TabAll, TabMobile, TabAccessories}

// ParseTab accepts the tab names case-insensitively. Empty means All.
func ParseTab(raw string) (Tab, error) {
	if strings.TrimSpace(raw) == "" {
		return TabAll, nil
	}

	for _, t := range tabs {
		if strings.EqualFold(raw, string(t)) {
			return t, nil
		}
	}

	return "", domain.NewValidationError("tab", fmt.Sprintf("unknown tab %q", raw))
}

// VisibleProducts keeps products in tab whose name contains query, ignoring
// case. Input order is preserved.
func VisibleProducts(products []domain.Product, tab Tab, query string) []domain.Product {
	q := strings.ToLower(query)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if tab != TabAll && string(p.Category) != string(tab) {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, p)
	}

	return out
}

type TabCount struct {
	Tab   Tab `json:"tab"`
	Count int `json:"count"`
}

// Tabs lists every tab with the number of products it would show.
func Tabs(products []domain.Product) []TabCount {
	out := make([]TabCount, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, TabCount{Tab: t, Count: len(VisibleProducts(products, t, ""))})
	}
	return out
}
