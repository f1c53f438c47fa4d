package catalog

import (
	"testing"

	"mobileHospital/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTab(t *testing.T) {
	tests := []struct {
		raw     string
		want    Tab
		wantErr bool
	}{
		{"", TabAll, false},
		{"all", TabAll, false},
		{"Mobile", TabMobile, false},
		{"accessories", TabAccessories, false},
		{"Laptops", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTab(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisibleProducts(t *testing.T) {
	products := domain.DefaultProducts(1700000000000)

	tests := []struct {
		name  string
		tab   Tab
		query string
		want  []string
	}{
		{"all", TabAll, "", []string{"1", "2", "3", "4"}},
		{"mobile", TabMobile, "", []string{"1", "2"}},
		{"accessories", TabAccessories, "", []string{"3", "4"}},
		{"case insensitive query", TabAll, "APPLE", []string{"1", "3"}},
		{"query within tab", TabAccessories, "apple", []string{"3"}},
		{"no match", TabMobile, "buds", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, p := range VisibleProducts(products, tt.tab, tt.query) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestVisibleProducts_Properties(t *testing.T) {
	products := domain.DefaultProducts(1700000000000)
	original := append([]domain.Product(nil), products...)

	first := VisibleProducts(products, TabAll, "a")
	again := VisibleProducts(first, TabAll, "a")

	assert.Equal(t, first, again, "re-filtering is idempotent")
	assert.Equal(t, original, products, "input is not mutated")

	// subset preserving relative order
	j := 0
	for _, p := range first {
		for j < len(products) && products[j].ID != p.ID {
			j++
		}
		require.Less(t, j, len(products), "product %s out of order or not in input", p.ID)
		j++
	}
}

func TestTabs(t *testing.T) {
	got := Tabs(domain.DefaultProducts(1700000000000))

	assert.Equal(t, []TabCount{
		{Tab: TabAll, Count: 4},
		{Tab: TabMobile, Count: 2},
		{Tab: TabAccessories, Count: 2},
	}, got)
}
