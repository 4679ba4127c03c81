package inventory

import (
	"github.com/BruksfildServices01/matcha-inventory/internal/models"
	"github.com/BruksfildServices01/matcha-inventory/internal/store"
)

// Repositories bundles one repository per resource kind over a shared
// backend.
type Repositories struct {
	Employees   *Repository[models.Employee]
	Suppliers   *Repository[models.Supplier]
	Utensils    *Repository[models.Utensil]
	Ingredients *Repository[models.Ingredient]
	Flavors     *Repository[models.Flavor]
}

func NewRepositories(b store.Backend, observers ...Observer) *Repositories {
	return &Repositories{
		Employees:   NewRepository(b, EmployeeKind(), observers...),
		Suppliers:   NewRepository(b, SupplierKind(), observers...),
		Utensils:    NewRepository(b, UtensilKind(), observers...),
		Ingredients: NewRepository(b, IngredientKind(), observers...),
		Flavors:     NewRepository(b, FlavorKind(), observers...),
	}
}

// Observe registers o on every repository.
func (r *Repositories) Observe(o Observer) {
	r.Employees.Observe(o)
	r.Suppliers.Observe(o)
	r.Utensils.Observe(o)
	r.Ingredients.Observe(o)
	r.Flavors.Observe(o)
}
