package entity

// CartLine is one product with the quantity being bought. A cart never
// carries a zero or negative quantity; decrementing a line to zero
// removes it.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Amount is the line total at the product's current price.
func (l CartLine) Amount() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// CartTotal sums all line amounts.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Amount()
	}
	return total
}
