package shopify

// API response payloads. Prices arrive as decimal strings and are
// converted to cents at ingestion.

type countResponse struct {
	Count int `json:"count"`
}

type productsResponse struct {
	Products []apiProduct `json:"products"`
}

type apiProduct struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Vendor      string       `json:"vendor"`
	ProductType string       `json:"product_type"`
	Variants    []apiVariant `json:"variants"`
	Images      []apiImage   `json:"images"`
}

type apiVariant struct {
	ID              int64  `json:"id"`
	ProductID       int64  `json:"product_id"`
	Title           string `json:"title"`
	SKU             string `json:"sku"`
	Price           string `json:"price"`
	InventoryItemID int64  `json:"inventory_item_id"`
}

type apiImage struct {
	Src string `json:"src"`
}

type inventoryItemResponse struct {
	InventoryItem struct {
		ID   int64   `json:"id"`
		Cost *string `json:"cost"`
	} `json:"inventory_item"`
}
