package entity

import "fmt"

// Mode baholash rejimi
type Mode string

const (
	ModeDesktop Mode = "desktop"
	ModeLaptop  Mode = "laptop"
)

// Build talaba tanlagan konfiguratsiya: yoki desktop slotlar to'plami,
// yoki bitta laptop. Ikkalasi birga bo'lishi mumkin emas.
type Build struct {
	Components map[Category]*Component
	Laptop     *Laptop
}

// NewBuild bo'sh desktop build
func NewBuild() *Build {
	return &Build{Components: make(map[Category]*Component)}
}

// Mode laptop tanlangan bo'lsa laptop rejimi
func (b *Build) Mode() Mode {
	if b.Laptop != nil {
		return ModeLaptop
	}
	return ModeDesktop
}

// Select komponentni o'z toifasi slotiga qo'yadi (oldingisini almashtiradi)
func (b *Build) Select(c *Component) error {
	if b.Laptop != nil {
		return fmt.Errorf("build: laptop already selected, cannot add components")
	}
	if c == nil {
		return fmt.Errorf("build: nil component")
	}
	if !ValidCategory(c.Category) {
		return fmt.Errorf("build: unknown category %q", c.Category)
	}
	if b.Components == nil {
		b.Components = make(map[Category]*Component)
	}
	b.Components[c.Category] = c
	return nil
}

// SelectLaptop laptop rejimiga o'tkazadi
func (b *Build) SelectLaptop(l *Laptop) error {
	if len(b.Components) > 0 {
		return fmt.Errorf("build: desktop components already selected, cannot add laptop")
	}
	if l == nil {
		return fmt.Errorf("build: nil laptop")
	}
	b.Laptop = l
	return nil
}

// Component slotdagi komponent (tanlanmagan bo'lsa nil)
func (b *Build) Component(cat Category) *Component {
	if b.Components == nil {
		return nil
	}
	return b.Components[cat]
}

// IsComplete baholash uchun minimal to'plam bormi.
// Desktop: CPU + Motherboard + RAM. Laptop: laptop tanlangan.
func (b *Build) IsComplete() bool {
	if b.Laptop != nil {
		return true
	}
	return b.Component(CategoryCPU) != nil &&
		b.Component(CategoryMotherboard) != nil &&
		b.Component(CategoryRAM) != nil
}

// Snapshot baholash davomida o'zgarmas nusxa. Komponent qiymatlari
// ko'chiriladi, shuning uchun keyingi Select chaqiruvlari ta'sir qilmaydi.
func (b *Build) Snapshot() *Build {
	snap := &Build{Components: make(map[Category]*Component, len(b.Components))}
	for cat, c := range b.Components {
		cc := *c
		if len(c.FormFactors) > 0 {
			cc.FormFactors = append([]string(nil), c.FormFactors...)
		}
		snap.Components[cat] = &cc
	}
	if b.Laptop != nil {
		ll := *b.Laptop
		if len(b.Laptop.Programs) > 0 {
			ll.Programs = append([]string(nil), b.Laptop.Programs...)
		}
		snap.Laptop = &ll
	}
	return snap
}
