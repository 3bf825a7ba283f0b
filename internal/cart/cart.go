package cart

import "github.com/Akshat190/qr-main/internal/entity"

// Item is one cart entry: a menu item reference plus a quantity.
type Item struct {
	MenuItemID    string  `json:"menu_item_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	EstimatedTime int     `json:"estimated_time"`
	Image         string  `json:"image,omitempty"`
}

// Cart accumulates selected menu items for one table-side session. It is
// plain data, persistence is the Store's job.
type Cart struct {
	Items []Item `json:"items"`
}

// AddItem appends the menu item with quantity 1, or bumps the quantity if
// the item is already in the cart.
func (c *Cart) AddItem(m entity.MenuItem) {
	for i := range c.Items {
		if c.Items[i].MenuItemID == m.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, Item{
		MenuItemID:    m.ID,
		Name:          m.Name,
		Price:         m.Price,
		Quantity:      1,
		EstimatedTime: m.EstimatedTime,
		Image:         m.Image,
	})
}

// UpdateQuantity sets the entry's quantity, clamped at zero. A zero-quantity
// entry stays in the cart until the caller removes it explicitly.
func (c *Cart) UpdateQuantity(menuItemID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) RemoveItem(menuItemID string) {
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// TotalTime is the estimated wait for the whole cart. The kitchen prepares
// items in parallel, so the slowest item gates the order, not the sum.
func (c *Cart) TotalTime() int {
	var max int
	for _, it := range c.Items {
		if it.EstimatedTime > max {
			max = it.EstimatedTime
		}
	}
	return max
}
