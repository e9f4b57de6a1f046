package models

// ServiceOffering is one entry of the static service catalog. Offerings
// are never persisted; the catalog is assembled in memory per response.
type ServiceOffering struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Price       string `json:"price"`
}
