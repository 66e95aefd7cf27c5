package schema

import (
	"github.com/sheetbind/sheetbind"
	"github.com/sheetbind/sheetbind/internal/catalog"
	"github.com/shopspring/decimal"
)

// Product is one row of the product catalog sheet.
type Product struct {
	SKU          string `validate:"required,alphanum"`
	Name         string `validate:"required"`
	Tier         int
	ListPrice    decimal.Decimal
	Discontinued bool
}

// ProductSchema defines the expected columns for product catalog uploads.
var ProductSchema = sheetbind.Schema[Product]{
	Sheet:   "Products",
	MaxRows: 5000,
	Columns: []sheetbind.Column[Product]{
		{Name: "SKU", Display: "SKU", Required: true,
			Description: "Alphanumeric stock keeping unit",
			Bind:        sheetbind.Text(func(p *Product, v string) { p.SKU = v })},
		{Name: "Name", Display: "Product Name", Required: true,
			Bind: sheetbind.Text(func(p *Product, v string) { p.Name = v })},
		{Name: "Tier", Display: "Support Tier",
			Bind: sheetbind.Enum([]sheetbind.Choice[int]{
				{Label: "Basic", Value: 1},
				{Label: "Standard", Value: 2},
				{Label: "Premium", Value: 3},
			}, func(p *Product, v int) { p.Tier = v })},
		{Name: "ListPrice", Display: "List Price",
			Bind: sheetbind.Decimal(func(p *Product, v decimal.Decimal) { p.ListPrice = v })},
		{Name: "Discontinued", Display: "Discontinued",
			Bind: sheetbind.Bool("Yes", "No", func(p *Product, v bool) { p.Discontinued = v })},
	},
}

func init() {
	catalog.Register(catalog.New("products", "Product Catalog", ProductSchema))
}
