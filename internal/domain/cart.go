package domain

// CartLine is one ledger entry: a catalog product and how many of it the
// buyer selected. A line never exists with quantity below one.
type CartLine struct {
	Product  Product
	Quantity int
}

// SubtotalCents returns unit price times quantity for this line.
func (l CartLine) SubtotalCents() int64 {
	return l.Product.PriceCents * int64(l.Quantity)
}

// Cart is the authoritative in-session record of selected products. Lines
// keep their first-add order. At most one line exists per product ID.
//
// Cart is not safe for concurrent use; callers serialize access per session.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of an existing line for the product, or
// appends a new line with quantity one. It never fails.
func (c *Cart) AddItem(p Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
}

// RemoveItem deletes the line for the given product ID. Removing an absent
// product is a no-op, not an error.
func (c *Cart) RemoveItem(productID int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the ledger. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the ledger entries in first-add order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the ledger holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalCents returns the sum of line subtotals; zero for an empty cart.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.SubtotalCents()
	}
	return total
}

// TotalCost returns the cart total rendered with two decimal places.
func (c *Cart) TotalCost() string {
	return FormatCents(c.TotalCents())
}

// TotalItemCount returns the sum of quantities over all lines.
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}
