package stock

// ===============================
// Stock Level
// ===============================

type Level string

const (
	InStock    Level = "IN_STOCK"
	LowStock   Level = "LOW_STOCK"
	OutOfStock Level = "OUT_OF_STOCK"
)

// Label is the display name used in dashboard stats.
func (l Level) Label() string {
	switch l {
	case OutOfStock:
		return "Out of Stock"
	case LowStock:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case InStock, LowStock, OutOfStock:
		return Level(s), true
	}
	return "", false
}

// ===============================
// Thresholds
// ===============================

const (
	DefaultUtensilMin    = 1
	DefaultIngredientMin = 100
	DefaultFlavorMin     = 1

	// jarsLowWatermark is fixed; it does not follow minStockLevel.
	jarsLowWatermark = 1
)
