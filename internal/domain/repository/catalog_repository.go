package repository

import (
	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
)

// CatalogRepository komponent va laptop katalogi bilan ishlash interfeysi.
// Katalog startupda yuklanadi va faqat o'qiladi; ReplaceCatalog butun
// katalogni atomik almashtiradi (hot reload).
type CatalogRepository interface {
	// ReplaceCatalog katalogni to'liq almashtiradi. Yaroqsiz yoki
	// takrorlangan yozuv bo'lsa xato qaytaradi va eski katalog qoladi.
	ReplaceCatalog(components []entity.Component, laptops []entity.Laptop) error

	// ComponentsByCategory toifadagi komponentlar (ID bo'yicha tartiblangan)
	ComponentsByCategory(cat entity.Category) []entity.Component

	// ComponentByID komponentni toifa ichida ID bo'yicha topadi
	ComponentByID(cat entity.Category, id string) (entity.Component, bool)

	// Laptops barcha laptoplar (ID bo'yicha tartiblangan)
	Laptops() []entity.Laptop

	// LaptopByID laptopni ID bo'yicha topadi
	LaptopByID(id string) (entity.Laptop, bool)
}
