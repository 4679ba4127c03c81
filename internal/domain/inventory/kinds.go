package inventory

import (
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/stock"
	"github.com/BruksfildServices01/matcha-inventory/internal/models"
)

// ===============================
// Catalogs
// ===============================

var (
	EmployeePositions = []string{"MANAGER", "BARISTA", "BAKER", "CASHIER", "WAITER"}
	EmployeeShifts    = []string{"MORNING", "HALF_DAY", "NIGHT"}

	SupplierCategories = []string{
		"MILKTEA_FLAVORS", "TOPPINGS", "FRUITS", "DOUGH_PASTRY", "INGREDIENTS", "UTENSILS",
	}
	SupplierStatuses = []string{"active", "inactive", "pending"}

	UtensilCategories = []string{
		"BAKING_TOOLS", "MEASURING_EQUIPMENT", "MIXING_TOOLS", "CUTTING_TOOLS",
		"SERVING_UTENSILS", "DECORATING_TOOLS", "COOKWARE", "BAKEWARE",
		"ELECTRICAL_EQUIPMENT",
	}
	UtensilStatuses = []string{"AVAILABLE", "IN_USE", "MAINTENANCE", "BROKEN", "CLEANING", "LOST"}

	IngredientCategories = []string{
		"TOPPINGS", "DOUGH_PASTRY", "FRUITS_VEGETABLES", "DAIRY_EGGS", "FLOURS_GRAINS",
		"SWEETENERS", "FLAVORINGS_EXTRACTS", "CHOCOLATE_COCOA", "NUTS_SEEDS",
		"LEAVENING_AGENTS", "SPICES_HERBS", "BEVERAGE_BASES",
	}
	IngredientStatuses = []string{"ACTIVE", "INACTIVE", "EXPIRED", "NEEDS_ORDER"}

	FlavorCategories = []string{
		"COFFEE_FLAVORS", "FRUIT_FLAVORS", "JUICE_FLAVORS", "CLASSIC_FLAVORS",
		"SPECIALTY_FLAVORS", "SEASONAL_FLAVORS",
	}
	FlavorStatuses = []string{"ACTIVE", "INACTIVE", "DISCONTINUED", "SEASONAL"}
)

// ===============================
// Kinds
// ===============================

func EmployeeKind() Kind[models.Employee] {
	return Kind[models.Employee]{
		Name:               "Employee",
		Collection:         "employees",
		Required:           []string{"name", "email", "position", "shift"},
		RequiredMessage:    "Missing required fields",
		Filters:            []string{"position", "shift"},
		CategoryField:      "position",
		FallbackCategories: EmployeePositions,
		AttachmentField:    "photoUrl",
		Build: func(f Fields) models.Employee {
			return models.Employee{
				Name:             f.String("name"),
				Email:            f.String("email"),
				Phone:            f.String("phone"),
				Position:         f.String("position"),
				Shift:            f.String("shift"),
				Salary:           f.Float("salary", 0),
				HireDate:         f.String("hireDate"),
				PerformanceNotes: f.String("performanceNotes"),
			}
		},
	}
}

func SupplierKind() Kind[models.Supplier] {
	return Kind[models.Supplier]{
		Name:               "Supplier",
		Collection:         "suppliers",
		Required:           []string{"name", "email", "category"},
		RequiredMessage:    "Missing required fields",
		Filters:            []string{"category", "contract"},
		CategoryField:      "category",
		FallbackCategories: SupplierCategories,
		Statuses:           SupplierStatuses,
		AttachmentField:    "documentUrl",
		Build: func(f Fields) models.Supplier {
			return models.Supplier{
				Name:          f.String("name"),
				Email:         f.String("email"),
				Phone:         f.String("phone"),
				Contract:      f.String("contract"),
				Place:         f.String("place"),
				Category:      f.String("category"),
				ContactPerson: f.String("contactPerson"),
				Website:       f.String("website"),
				Notes:         f.String("notes"),
				Status:        f.StringOr("status", "active"),
			}
		},
	}
}

func UtensilKind() Kind[models.Utensil] {
	return Kind[models.Utensil]{
		Name:               "Utensil",
		Collection:         "utensils",
		Required:           []string{"name", "category"},
		RequiredMessage:    "Name and category are required fields",
		Filters:            []string{"category", "status"},
		CategoryField:      "category",
		FallbackCategories: UtensilCategories,
		Statuses:           UtensilStatuses,
		AttachmentField:    "imageUrl",
		Build: func(f Fields) models.Utensil {
			minLevel := f.Int("minStockLevel", stock.DefaultUtensilMin)
			return models.Utensil{
				Name:            f.String("name"),
				Category:        f.String("category"),
				Quantity:        f.Int("quantity", 1),
				MinStockLevel:   &minLevel,
				MaxStockLevel:   f.Int("maxStockLevel", 500),
				Supplier:        f.String("supplier"),
				PurchaseDate:    f.String("purchaseDate"),
				LastMaintenance: f.String("lastMaintenance"),
				NextMaintenance: f.String("nextMaintenance"),
				Cost:            f.Float("cost", 0),
				Location:        f.String("location"),
				Status:          f.StringOr("status", "AVAILABLE"),
				Notes:           f.String("notes"),
			}
		},
		Reading: func(u models.Utensil) stock.Reading {
			minLevel := float64(stock.DefaultUtensilMin)
			if u.MinStockLevel != nil {
				minLevel = float64(*u.MinStockLevel)
			}
			return stock.Reading{Quantity: float64(u.Quantity), MinStockLevel: minLevel}
		},
	}
}

func IngredientKind() Kind[models.Ingredient] {
	return Kind[models.Ingredient]{
		Name:               "Ingredient",
		Collection:         "ingredients",
		Required:           []string{"name", "category"},
		RequiredMessage:    "Name and category are required fields",
		Filters:            []string{"category"},
		CategoryField:      "category",
		FallbackCategories: IngredientCategories,
		Statuses:           IngredientStatuses,
		AttachmentField:    "imageUrl",
		Build: func(f Fields) models.Ingredient {
			minLevel := f.Float("minStockLevel", stock.DefaultIngredientMin)
			return models.Ingredient{
				Name:            f.String("name"),
				Category:        f.String("category"),
				Quantity:        f.Float("quantity", 0),
				Unit:            f.StringOr("unit", "grams"),
				MinStockLevel:   &minLevel,
				MaxStockLevel:   f.Float("maxStockLevel", 1000),
				CostPerUnit:     f.Float("costPerUnit", 0),
				Supplier:        f.String("supplier"),
				ExpiryDate:      f.String("expiryDate"),
				StorageLocation: f.StringOr("storageLocation", "DRY_STORAGE"),
				Status:          f.StringOr("status", "ACTIVE"),
				Notes:           f.String("notes"),
			}
		},
		Reading: func(i models.Ingredient) stock.Reading {
			minLevel := float64(stock.DefaultIngredientMin)
			if i.MinStockLevel != nil {
				minLevel = *i.MinStockLevel
			}
			return stock.Reading{Quantity: i.Quantity, MinStockLevel: minLevel}
		},
	}
}

func FlavorKind() Kind[models.Flavor] {
	return Kind[models.Flavor]{
		Name:               "Flavor",
		Collection:         "flavors",
		Required:           []string{"name", "category"},
		RequiredMessage:    "Name and category are required fields",
		Filters:            []string{"category"},
		CategoryField:      "category",
		FallbackCategories: FlavorCategories,
		Statuses:           FlavorStatuses,
		AttachmentField:    "imageUrl",
		Build: func(f Fields) models.Flavor {
			minLevel := f.Int("minStockLevel", stock.DefaultFlavorMin)
			return models.Flavor{
				Name:            f.String("name"),
				Category:        f.String("category"),
				Quantity:        f.Float("quantity", 0),
				Jars:            f.Int("jars", 0),
				MinStockLevel:   &minLevel,
				MaxStockLevel:   f.Int("maxStockLevel", 10),
				CostPerJar:      f.Float("costPerJar", 0),
				Supplier:        f.String("supplier"),
				ExpiryDate:      f.String("expiryDate"),
				StorageLocation: f.StringOr("storageLocation", "SHELF_STABLE"),
				Status:          f.StringOr("status", "ACTIVE"),
				Description:     f.String("description"),
				Notes:           f.String("notes"),
			}
		},
		Reading: func(fl models.Flavor) stock.Reading {
			minLevel := float64(stock.DefaultFlavorMin)
			if fl.MinStockLevel != nil {
				minLevel = float64(*fl.MinStockLevel)
			}
			jars := fl.Jars
			return stock.Reading{Quantity: fl.Quantity, MinStockLevel: minLevel, Jars: &jars}
		},
	}
}
