package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
	"github.com/yourusername/campus-pc-advisor/internal/domain/repository"
)

type memoryCatalogRepository struct {
	mu         sync.RWMutex
	components map[entity.Category]map[string]entity.Component
	laptops    map[string]entity.Laptop
}

// NewMemoryCatalogRepository in-memory katalog repository yaratish
func NewMemoryCatalogRepository() repository.CatalogRepository {
	return &memoryCatalogRepository{
		components: make(map[entity.Category]map[string]entity.Component),
		laptops:    make(map[string]entity.Laptop),
	}
}

// ReplaceCatalog katalogni to'liq almashtiradi. Avval hamma yozuv
// tekshiriladi, keyin bitta lock ostida atomik swap qilinadi:
// yarim yangilangan katalog hech qachon ko'rinmaydi.
func (m *memoryCatalogRepository) ReplaceCatalog(components []entity.Component, laptops []entity.Laptop) error {
	newComponents := make(map[entity.Category]map[string]entity.Component)
	for _, c := range components {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		byID, ok := newComponents[c.Category]
		if !ok {
			byID = make(map[string]entity.Component)
			newComponents[c.Category] = byID
		}
		if _, dup := byID[c.ID]; dup {
			return fmt.Errorf("catalog: duplicate component id %q in category %s", c.ID, c.Category)
		}
		byID[c.ID] = c
	}

	newLaptops := make(map[string]entity.Laptop, len(laptops))
	for _, l := range laptops {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		if _, dup := newLaptops[l.ID]; dup {
			return fmt.Errorf("catalog: duplicate laptop id %q", l.ID)
		}
		newLaptops[l.ID] = l
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = newComponents
	m.laptops = newLaptops
	return nil
}

// ComponentsByCategory toifadagi komponentlar, ID bo'yicha tartiblangan
func (m *memoryCatalogRepository) ComponentsByCategory(cat entity.Category) []entity.Component {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byID := m.components[cat]
	result := make([]entity.Component, 0, len(byID))
	for _, c := range byID {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ComponentByID komponentni toifa ichida ID bo'yicha topish
func (m *memoryCatalogRepository) ComponentByID(cat entity.Category, id string) (entity.Component, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.components[cat][id]
	return c, ok
}

// Laptops barcha laptoplar, ID bo'yicha tartiblangan
func (m *memoryCatalogRepository) Laptops() []entity.Laptop {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]entity.Laptop, 0, len(m.laptops))
	for _, l := range m.laptops {
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// LaptopByID laptopni ID bo'yicha topish
func (m *memoryCatalogRepository) LaptopByID(id string) (entity.Laptop, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.laptops[id]
	return l, ok
}
