package catalog

// Catalog is an immutable ordered product list with id lookup. Nothing
// mutates it after construction, so reads need no locking.
type Catalog struct {
	products []Product
	byID     map[string]int
}

func NewCatalog(products []Product) *Catalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{products: products, byID: byID}
}

// All returns the products in seed order. The slice is a copy; callers may
// not reach the backing array.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int {
	return len(c.products)
}
