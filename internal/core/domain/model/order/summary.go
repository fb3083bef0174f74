package order

import "ordering/internal/core/domain/model/kernel"

// Summary is the order total shown next to the line list.
type Summary struct {
	totalPrice    kernel.Price
	totalQuantity int
	lineCount     int
}

// Summarize adds up prices and quantities of lines.
func Summarize(lines []Line) Summary {
	s := Summary{totalPrice: kernel.ZeroPrice}
	for _, l := range lines {
		s.totalPrice = s.totalPrice.Plus(l.Total())
		s.totalQuantity += l.Quantity().Value()
		s.lineCount++
	}
	return s
}

func (s Summary) TotalPrice() kernel.Price {
	return s.totalPrice
}

func (s Summary) TotalQuantity() int {
	return s.totalQuantity
}

func (s Summary) LineCount() int {
	return s.lineCount
}

// IsEmpty reports whether there is nothing to order yet.
func (s Summary) IsEmpty() bool {
	return s.lineCount == 0
}
