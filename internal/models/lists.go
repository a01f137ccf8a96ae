package models

// AddSnapshotRequest represents the request to add a product to the
// wishlist or compare list.
type AddSnapshotRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// ListResponse represents the wishlist or compare list contents
type ListResponse struct {
	Entries []ProductSnapshot `json:"entries"`
	Total   int               `json:"total"`
}
