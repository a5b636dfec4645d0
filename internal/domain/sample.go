package domain

import "github.com/shopspring/decimal"

// SampleCatalog returns the starter catalog used to seed a first run.
func SampleCatalog() []*Product {
	return []*Product{
		physical("001A", "Tata Salt 1kg", "28.00", 100, 1.0),
		physical("002A", "Amul Butter 100g", "50.00", 50, 0.1),
		physical("003A", "Parle-G Biscuits 100g", "10.00", 200, 0.1),
		physical("004A", "Maggi Noodles 70g", "12.00", 150, 0.07),
		physical("005A", "Dettol Soap 75g", "35.00", 80, 0.075),
		digital("006A", "Bollywood Movie - Sholay", "99.00", 1000, "https://store.example.com/download/sholay"),
		digital("007A", "Hindi Learning Course", "799.00", 500, "https://courses.example.com/hindi-basic"),
		digital("008A", "Indian Classical Music Collection", "249.00", 300, "https://music.example.com/classical-indian"),
		digital("009A", "Yoga for Beginners", "499.00", 200, "https://fitness.example.com/yoga-course"),
	}
}

func physical(id, name, price string, qty int, weight float64) *Product {
	return &Product{
		Type:              ProductTypePhysical,
		ProductID:         id,
		Name:              name,
		Price:             decimal.RequireFromString(price),
		QuantityAvailable: qty,
		Weight:            weight,
	}
}

func digital(id, name, price string, qty int, link string) *Product {
	return &Product{
		Type:              ProductTypeDigital,
		ProductID:         id,
		Name:              name,
		Price:             decimal.RequireFromString(price),
		QuantityAvailable: qty,
		DownloadLink:      link,
	}
}
