package domain

type Condition string

const (
	ConditionLikeNew Condition = "Like New"
	ConditionGood    Condition = "Good"
	ConditionAverage Condition = "Average"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionLikeNew, ConditionGood, ConditionAverage:
		return true
	}
	return false
}

type Category string

const (
	CategoryMobile      Category = "Mobile"
	CategoryAccessories Category = "Accessories"
)

func (c Category) Valid() bool {
	return c == CategoryMobile || c == CategoryAccessories
}

// Specs holds the optional attributes of a listing. RAM and Storage belong to
// Mobile listings, Type (charger, headset, cable...) to Accessories.
type Specs struct {
	RAM     string `json:"ram,omitempty"`
	Storage string `json:"storage,omitempty"`
	Type    string `json:"type,omitempty"`
}

// Product is persisted as part of the shop_products collection.
// Price is in whole rupees, CreatedAt in epoch millis.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Condition   Condition `json:"condition"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Specs       Specs     `json:"specs"`
	Image       string    `json:"image"`
	CreatedAt   int64     `json:"createdAt"`
}

type ProductDraft struct {
	Name        string    `json:"name" validate:"required"`
	Price       int64     `json:"price" validate:"gt=0"`
	Condition   Condition `json:"condition" validate:"condition"`
	Category    Category  `json:"category" validate:"category"`
	Description string    `json:"description"`
	Specs       Specs     `json:"specs"`
	Image       string    `json:"image"`
}

// ProductPatch carries the fields to overwrite on update; nil means keep.
type ProductPatch struct {
	Name        *string    `json:"name,omitempty"`
	Price       *int64     `json:"price,omitempty"`
	Condition   *Condition `json:"condition,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Description *string    `json:"description,omitempty"`
	Specs       *Specs     `json:"specs,omitempty"`
	Image       *string    `json:"image,omitempty"`
}

func (p Product) Draft() ProductDraft {
	return ProductDraft{
		Name:        p.Name,
		Price:       p.Price,
		Condition:   p.Condition,
		Category:    p.Category,
		Description: p.Description,
		Specs:       p.Specs,
		Image:       p.Image,
	}
}

// Apply merges the patch into a copy of the draft.
func (d ProductDraft) Apply(patch ProductPatch) ProductDraft {
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Price != nil {
		d.Price = *patch.Price
	}
	if patch.Condition != nil {
		d.Condition = *patch.Condition
	}
	if patch.Category != nil {
		d.Category = *patch.Category
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Specs != nil {
		d.Specs = *patch.Specs
	}
	if patch.Image != nil {
		d.Image = *patch.Image
	}
	return d
}
