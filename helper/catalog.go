package helper

import (
	"fmt"
	"strings"
	"sync"

	"quentinhas/config"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Catalog is the static menu and the event dates, fixed at start-up.
type Catalog struct {
	Items []model.MenuItem
	Dates []model.EventDate
}

var (
	catalogMu sync.RWMutex
	current   = DefaultCatalog()
)

func CurrentCatalog() Catalog {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	return current
}

// ItemNames lists the menu item names in menu order.
func (c Catalog) ItemNames() []string {
	names := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		names = append(names, item.Name)
	}
	return names
}

func SetCatalog(c Catalog) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	current = c
}

func NewMenuItem(name string, price decimal.Decimal) model.MenuItem {
	return model.MenuItem{Name: name, Slug: slug.Make(name), Price: price}
}

func NewEventDate(iso string) (model.EventDate, error) {
	label, err := utils.DateLabel(iso)
	if err != nil {
		return model.EventDate{}, err
	}
	return model.EventDate{Date: iso, Label: label}, nil
}

func DefaultCatalog() Catalog {
	price := decimal.RequireFromString("20.00")
	return Catalog{
		Items: []model.MenuItem{
			NewMenuItem("Isca (carne, frango e calabresa)", price),
			NewMenuItem("Frango assado e Toscana", price),
			NewMenuItem("Assado de panela e Toscana", price),
		},
		Dates: []model.EventDate{
			{Date: "2025-08-02", Label: "Sábado (02/08/2025)"},
			{Date: "2025-08-03", Label: "Domingo (03/08/2025)"},
		},
	}
}

// LoadCatalog applies MENU_ITEMS and EVENT_DATES over the default catalog.
func LoadCatalog() (Catalog, error) {
	c := DefaultCatalog()
	if raw := config.Config("MENU_ITEMS"); raw != "" {
		items, err := ParseMenuItems(raw)
		if err != nil {
			return Catalog{}, err
		}
		c.Items = items
	}
	if raw := config.Config("EVENT_DATES"); raw != "" {
		dates, err := ParseEventDates(raw)
		if err != nil {
			return Catalog{}, err
		}
		c.Dates = dates
	}
	return c, nil
}

// ParseMenuItems reads "name=price;name=price".
func ParseMenuItems(raw string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	seen := map[string]bool{}
	slugs := map[string]bool{}
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, priceStr, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("menu item %q: expected name=price", entry)
		}
		if strings.Contains(name, "] ") {
			return nil, fmt.Errorf("menu item %q: name must not contain \"] \"", name)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(priceStr))
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("menu item %q: invalid price %q", name, priceStr)
		}
		if seen[name] {
			return nil, fmt.Errorf("menu item %q listed twice", name)
		}
		seen[name] = true
		item := NewMenuItem(name, price.Round(2))
		item.Slug = uniqueSlug(item.Slug, slugs)
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu is empty")
	}
	return items, nil
}

// ParseEventDates reads a comma separated list of ISO dates.
func ParseEventDates(raw string) ([]model.EventDate, error) {
	var dates []model.EventDate
	for _, iso := range strings.Split(raw, ",") {
		iso = strings.TrimSpace(iso)
		if iso == "" {
			continue
		}
		d, err := NewEventDate(iso)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("no event dates")
	}
	return dates, nil
}

// uniqueSlug suffixes -1, -2... until base is not taken, then marks it taken.
func uniqueSlug(base string, taken map[string]bool) string {
	result := base
	for i := 1; taken[result]; i++ {
		result = fmt.Sprintf("%s-%d", base, i)
	}
	taken[result] = true
	return result
}

// Item looks an item up by slug or by exact name.
func (c Catalog) Item(key string) (model.MenuItem, bool) {
	for _, item := range c.Items {
		if item.Slug == key || item.Name == key {
			return item, true
		}
	}
	return model.MenuItem{}, false
}

func (c Catalog) Date(iso string) (model.EventDate, bool) {
	for _, d := range c.Dates {
		if d.Date == iso {
			return d, true
		}
	}
	return model.EventDate{}, false
}
