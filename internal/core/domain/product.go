package domain

// Product is the catalog view this system needs at order time. Catalog
// management itself lives outside this service.
type Product struct {
	ID       int64
	Name     string
	Price    Money
	ImageURL string
}

// ProductSnapshot is a copy of catalog data captured at order time, so later
// price or name changes never affect historical orders.
type ProductSnapshot struct {
	Name  string
	Price Money
	Image string
}

// SnapshotOf captures a product's current state.
func SnapshotOf(p Product) ProductSnapshot {
	return ProductSnapshot{
		Name:  p.Name,
		Price: p.Price,
		Image: p.ImageURL,
	}
}
