package domain

import (
	"math"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

type LineItem struct {
	Product  Product
	Quantity int
}

func (li LineItem) Total() Money {
	return li.Product.UnitPrice.Mul(int64(li.Quantity))
}

// Cart is an ordered list of line items, unique by product id.
// Every line item has Quantity >= 1.
type Cart struct {
	Currency currency.Unit
	Items    []LineItem
}

func NewCart(cur currency.Unit) *Cart {
	return &Cart{Currency: cur}
}

// AddItem increments the quantity of an existing line item or appends a new one with quantity 1.
func (c *Cart) AddItem(p Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.Items[i].Quantity = addQuantity(c.Items[i].Quantity, 1)
		return
	}

	c.Items = append(c.Items, LineItem{Product: p, Quantity: 1})
}

// UpdateQuantity adds delta to the quantity of the line item, clamping at zero and math.MaxInt.
// A line item reaching zero is removed. It reports whether the product was in the cart.
func (c *Cart) UpdateQuantity(productID uuid.UUID, delta int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}

	newQuantity := addQuantity(c.Items[i].Quantity, delta)
	if newQuantity == 0 {
		c.removeAt(i)
		return true
	}

	c.Items[i].Quantity = newQuantity
	return true
}

// RemoveItem removes the line item regardless of quantity. It reports whether the product was in the cart.
func (c *Cart) RemoveItem(productID uuid.UUID) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}

	c.removeAt(i)
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Quantity returns the quantity of the product in the cart, 0 if absent.
func (c *Cart) Quantity(productID uuid.UUID) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// Snapshot returns a copy of the line items that later mutations do not affect.
func (c *Cart) Snapshot() []LineItem {
	if len(c.Items) == 0 {
		return nil
	}

	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)

	return items
}

// Subtotal is the exact sum of quantity x unit price over all line items.
func (c *Cart) Subtotal() Money {
	subtotal := ZeroMoney(c.Currency)
	for _, item := range c.Items {
		subtotal.Amount = subtotal.Amount.Add(item.Total().Amount)
	}
	return subtotal
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// addQuantity returns max(0, q+delta) saturated at math.MaxInt, q >= 1.
func addQuantity(q, delta int) int {
	if delta > 0 && q > math.MaxInt-delta {
		return math.MaxInt
	}
	return max(0, q+delta)
}

func (c *Cart) removeAt(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}
