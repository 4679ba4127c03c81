package stock

// Reading is the stock-relevant view of one inventory record. Jars is set
// only for flavors.
type Reading struct {
	Quantity      float64
	MinStockLevel float64
	Jars          *int
}

// Classify maps a reading to its stock level.
func Classify(r Reading) Level {
	if r.Quantity <= 0 {
		return OutOfStock
	}
	if r.Jars != nil && *r.Jars <= 0 {
		return OutOfStock
	}
	if r.Quantity <= r.MinStockLevel {
		return LowStock
	}
	if r.Jars != nil && *r.Jars <= jarsLowWatermark {
		return LowStock
	}
	return InStock
}

// Tally counts readings per level.
type Tally struct {
	Total int
	Low   int
	Out   int
}

func (t *Tally) Add(l Level) {
	t.Total++
	switch l {
	case LowStock:
		t.Low++
	case OutOfStock:
		t.Out++
	}
}

func (t Tally) In() int {
	return t.Total - t.Low - t.Out
}
