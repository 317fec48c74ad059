package domain

// MenuItem represents a menu entry in the static catalog
type MenuItem struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	ImageURL        string   `json:"imageUrl"`
	Category        string   `json:"category"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews,omitempty"`
	PreparationTime string   `json:"preparationTime,omitempty"`
	Calories        int      `json:"calories,omitempty"`
	Ingredients     []string `json:"ingredients,omitempty"`
	IsPopular       bool     `json:"isPopular"`
	IsNew           bool     `json:"isNew"`
}

// Categories is the fixed set of menu categories
var Categories = []string{"burgers", "pizza", "drinks", "desserts", "salads", "sides"}

// ValidCategory reports whether name is one of the fixed categories
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// CartLine is one item held in a cart. Name, Price and ImageURL are
// snapshots taken when the line was added, not live catalog values.
type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Quantity int     `json:"quantity"`
}

// UserProfile represents the signed-in user record
type UserProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
