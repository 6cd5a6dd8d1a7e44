package session

import "errors"

// ErrDifferentRestaurant is returned when an item from another restaurant
// is added to a non-empty cart. The caller must clear the cart first.
var ErrDifferentRestaurant = errors.New("cart holds items from another restaurant")

const (
	taxRate     = 0.08
	deliveryFee = 3.99
)

type CartItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type CartRestaurant struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type cartState struct {
	Restaurant *CartRestaurant `json:"restaurant"`
	Items      []CartItem      `json:"items"`
}

// Cart is a single-restaurant shopping cart persisted across visits.
type Cart struct {
	store *Store
	state cartState
}

func NewCart(store *Store) *Cart {
	return &Cart{store: store}
}

// Load restores previously persisted cart contents, if any.
func (c *Cart) Load() error {
	_, err := c.store.Load(&c.state)
	return err
}

// AddItem puts one unit of item into the cart, merging with an existing
// line for the same menu item. The first add pins the cart to the item's
// restaurant; adds from another restaurant fail with ErrDifferentRestaurant.
func (c *Cart) AddItem(restaurant CartRestaurant, item CartItem) error {
	if c.state.Restaurant != nil && c.state.Restaurant.ID != restaurant.ID {
		return ErrDifferentRestaurant
	}
	if c.state.Restaurant == nil {
		c.state.Restaurant = &restaurant
	}

	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	for i := range c.state.Items {
		if c.state.Items[i].MenuItemID == item.MenuItemID {
			c.state.Items[i].Quantity += item.Quantity
			return c.store.Persist(&c.state)
		}
	}
	c.state.Items = append(c.state.Items, item)
	return c.store.Persist(&c.state)
}

// RemoveItem drops a line from the cart. Removing the last line unpins the
// restaurant.
func (c *Cart) RemoveItem(menuItemID string) error {
	kept := c.state.Items[:0]
	for _, it := range c.state.Items {
		if it.MenuItemID != menuItemID {
			kept = append(kept, it)
		}
	}
	c.state.Items = kept
	if len(c.state.Items) == 0 {
		c.state.Restaurant = nil
	}
	return c.store.Persist(&c.state)
}

// SetQuantity updates a line's quantity; zero removes the line.
func (c *Cart) SetQuantity(menuItemID string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(menuItemID)
	}
	for i := range c.state.Items {
		if c.state.Items[i].MenuItemID == menuItemID {
			c.state.Items[i].Quantity = quantity
			return c.store.Persist(&c.state)
		}
	}
	return nil
}

// Clear empties the cart and its persisted copy.
func (c *Cart) Clear() error {
	c.state = cartState{}
	return c.store.Clear()
}

func (c *Cart) Items() []CartItem {
	return c.state.Items
}

func (c *Cart) Restaurant() *CartRestaurant {
	return c.state.Restaurant
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.state.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, it := range c.state.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (c *Cart) Tax() float64 {
	return c.Subtotal() * taxRate
}

func (c *Cart) DeliveryFee() float64 {
	return deliveryFee
}

func (c *Cart) Total() float64 {
	return c.Subtotal() + c.Tax() + c.DeliveryFee()
}
