package model

// Franchise is the aggregate root. Branches and products are embedded
// documents, never addressed outside their franchise. Active is a tri-state
// for compatibility with documents written before the flag existed: nil is
// treated as active.
type Franchise struct {
	ID       string   `bson:"_id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	Active   *bool    `bson:"active,omitempty" json:"active,omitempty"`
	Branches []Branch `bson:"branches" json:"branches"`
}

// IsActive reports whether the franchise accepts mutations of its branches.
func (f *Franchise) IsActive() bool {
	return f.Active == nil || *f.Active
}

type Branch struct {
	ID       string    `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Active   bool      `bson:"active" json:"active"`
	Products []Product `bson:"products" json:"products"`
}

type Product struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Stock int    `bson:"stock" json:"stock"`
}

type CreateFranchiseRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}

type UpdateFranchiseNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateFranchiseStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type CreateBranchRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}

type UpdateBranchNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBranchStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type CreateProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Stock *int   `json:"stock" binding:"required"`
}

type UpdateProductNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateProductStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

type FranchiseResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Active   bool             `json:"active"`
	Branches []BranchResponse `json:"branches"`
}

type BranchResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Active   bool              `json:"active"`
	Products []ProductResponse `json:"products"`
}

type ProductResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type TopProductPerBranchResponse struct {
	BranchID   string          `json:"branchId"`
	BranchName string          `json:"branchName"`
	Product    ProductResponse `json:"product"`
}

// FranchiseToResponse flattens the aggregate for the API.
func FranchiseToResponse(f *Franchise) FranchiseResponse {
	branches := make([]BranchResponse, 0, len(f.Branches))
	for i := range f.Branches {
		branches = append(branches, BranchToResponse(&f.Branches[i]))
	}
	return FranchiseResponse{
		ID:       f.ID,
		Name:     f.Name,
		Active:   f.IsActive(),
		Branches: branches,
	}
}

func BranchToResponse(b *Branch) BranchResponse {
	products := make([]ProductResponse, 0, len(b.Products))
	for _, p := range b.Products {
		products = append(products, ProductToResponse(p))
	}
	return BranchResponse{
		ID:       b.ID,
		Name:     b.Name,
		Active:   b.Active,
		Products: products,
	}
}

func ProductToResponse(p Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Stock: p.Stock}
}
