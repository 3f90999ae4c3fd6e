package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/franchise-api/backend/internal/db"
	"github.com/franchise-api/backend/internal/model"
)

// FranchiseService manages the franchise aggregate: franchises, their
// branches and the products held per branch. Every mutation rewrites the
// whole aggregate through the store.
type FranchiseService struct {
	franchises db.FranchiseStore
}

func NewFranchiseService(franchises db.FranchiseStore) *FranchiseService {
	return &FranchiseService{franchises: franchises}
}

func (s *FranchiseService) CreateFranchise(ctx context.Context, req model.CreateFranchiseRequest) (*model.FranchiseResponse, error) {
	name, err := requireName(req.Name, "franchise name is required")
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	active := req.Active == nil || *req.Active
	franchise := &model.Franchise{
		ID:       uuid.NewString(),
		Name:     name,
		Active:   &active,
		Branches: []model.Branch{},
	}
	if err := s.franchises.SaveFranchise(ctx, franchise); err != nil {
		return nil, err
	}

	response := model.FranchiseToResponse(franchise)
	return &response, nil
}

func (s *FranchiseService) GetFranchise(ctx context.Context, franchiseID string) (*model.FranchiseResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	response := model.FranchiseToResponse(franchise)
	return &response, nil
}

func (s *FranchiseService) GetAllFranchises(ctx context.Context) ([]model.FranchiseResponse, error) {
	franchises, err := s.franchises.FindAllFranchises(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]model.FranchiseResponse, 0, len(franchises))
	for _, franchise := range franchises {
		responses = append(responses, model.FranchiseToResponse(franchise))
	}
	return responses, nil
}

func (s *FranchiseService) UpdateFranchiseName(ctx context.Context, franchiseID string, req model.UpdateFranchiseNameRequest) (*model.FranchiseResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	newName, err := requireName(req.Name, "franchise name is required")
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(franchise.Name, newName) {
		if err := s.ensureNameFree(ctx, newName, franchiseID); err != nil {
			return nil, err
		}
		franchise.Name = newName
		if err := s.franchises.SaveFranchise(ctx, franchise); err != nil {
			return nil, err
		}
	}

	response := model.FranchiseToResponse(franchise)
	return &response, nil
}

func (s *FranchiseService) UpdateFranchiseStatus(ctx context.Context, franchiseID string, active bool) (*model.FranchiseResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	if franchise.IsActive() != active {
		franchise.Active = &active
		if err := s.franchises.SaveFranchise(ctx, franchise); err != nil {
			return nil, err
		}
	}

	response := model.FranchiseToResponse(franchise)
	return &response, nil
}

func (s *FranchiseService) DeleteFranchise(ctx context.Context, franchiseID string) error {
	if _, err := s.findFranchise(ctx, franchiseID); err != nil {
		return err
	}
	return s.franchises.DeleteFranchise(ctx, franchiseID)
}

func (s *FranchiseService) AddBranch(ctx context.Context, franchiseID string, req model.CreateBranchRequest) (*model.BranchResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	if !franchise.IsActive() {
		return nil, fmt.Errorf("%w: cannot add branches to an inactive franchise", ErrInvalidInput)
	}
	name, err := requireName(req.Name, "branch name is required")
	if err != nil {
		return nil, err
	}
	for _, branch := range franchise.Branches {
		if strings.EqualFold(branch.Name, name) {
			return nil, fmt.Errorf("%w: a branch named %q already exists in the franchise", ErrConflict, name)
		}
	}

	branch := model.Branch{
		ID:       uuid.NewString(),
		Name:     name,
		Active:   req.Active == nil || *req.Active,
		Products: []model.Product{},
	}
	franchise.Branches = append(franchise.Branches, branch)
	if err := s.franchises.SaveFranchise(ctx, franchise); err != nil {
		return nil, err
	}

	response := model.BranchToResponse(&branch)
	return &response, nil
}

func (s *FranchiseService) UpdateBranchName(ctx context.Context, franchiseID, branchID string, req model.UpdateBranchNameRequest) (*model.BranchResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	branch, err := findBranch(franchise, branchID)
	if err != nil {
		return nil, err
	}
	newName, err := requireName(req.Name, "branch name is required")
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(branch.Name, newName) {
		for _, other := range franchise.Branches {
			if other.ID != branchID && strings.EqualFold(other.Name, newName) {
				return nil, fmt.Errorf("%w: a branch named %q already exists in the franchise", ErrConflict, newName)
			}
		}
		branch.Name = newName
		if err := s.franchises.SaveFranchise(ctx, franchise); err != nil {
			return nil, err
		}
	}

	response := model.BranchToResponse(branch)
	return &response, nil
}

func (s *FranchiseService) UpdateBranchStatus(ctx context.Context, franchiseID, branchID string, active bool) (*model.BranchResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	branch, err := findBranch(franchise, branchID)
	if err != nil {
		return nil, err
	}

	if branch.Active != active {
		branch.Active = active
		if err := s.franchises.SaveFranchise(ctx, franchise); err != nil {
			return nil, err
		}
	}

	response := model.BranchToResponse(branch)
	return &response, nil
}

func (s *FranchiseService) DeleteBranch(ctx context.Context, franchiseID, branchID string) error {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return err
	}

	kept := franchise.Branches[:0]
	removed := false
	for _, branch := range franchise.Branches {
		if branch.ID == branchID {
			removed = true
			continue
		}
		kept = append(kept, branch)
	}
	if !removed {
		return fmt.Errorf("%w: branch with id %q not found", ErrNotFound, branchID)
	}
	franchise.Branches = kept
	return s.franchises.SaveFranchise(ctx, franchise)
}

func (s *FranchiseService) AddProduct(ctx context.Context, franchiseID, branchID string, req model.CreateProductRequest) (*model.ProductResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	if !franchise.IsActive() {
		return nil, fmt.Errorf("%w: cannot add products to an inactive franchise", ErrInvalidInput)
	}
	branch, err := findBranch(franchise, branchID)
	if err != nil {
		return nil, err
	}
	if !branch.Active {
		return nil, fmt.Errorf("%w: cannot add products to an inactive branch", ErrInvalidInput)
	}
	name, err := requireName(req.Name, "product name is required")
	if err != nil {
		return nil, err
	}
	stock, err := requireStock(req.Stock)
	if err != nil {
		return nil, err
	}
	for _, product := range branch.Products {
		if strings.EqualFold(product.Name, name) {
			return nil, fmt.Errorf("%w: a product named %q already exists in the branch", ErrConflict, name)
		}
	}

	product := model.Product{ID: uuid.NewString(), Name: name, Stock: stock}
	branch.Products = append(branch.Products, product)
	if err := s.franchises.SaveFranchise(ctx, franchise); err != nil {
		return nil, err
	}

	response := model.ProductToResponse(product)
	return &response, nil
}

func (s *FranchiseService) UpdateProductName(ctx context.Context, franchiseID, branchID, productID string, req model.UpdateProductNameRequest) (*model.ProductResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	branch, err := findBranch(franchise, branchID)
	if err != nil {
		return nil, err
	}
	product, err := findProduct(branch, productID)
	if err != nil {
		return nil, err
	}
	newName, err := requireName(req.Name, "product name is required")
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(product.Name, newName) {
		for _, other := range branch.Products {
			if other.ID != productID && strings.EqualFold(other.Name, newName) {
				return nil, fmt.Errorf("%w: a product named %q already exists in the branch", ErrConflict, newName)
			}
		}
		product.Name = newName
		if err := s.franchises.SaveFranchise(ctx, franchise); err != nil {
			return nil, err
		}
	}

	response := model.ProductToResponse(*product)
	return &response, nil
}

func (s *FranchiseService) UpdateProductStock(ctx context.Context, franchiseID, branchID, productID string, stock *int) (*model.ProductResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	branch, err := findBranch(franchise, branchID)
	if err != nil {
		return nil, err
	}
	product, err := findProduct(branch, productID)
	if err != nil {
		return nil, err
	}
	value, err := requireStock(stock)
	if err != nil {
		return nil, err
	}

	product.Stock = value
	if err := s.franchises.SaveFranchise(ctx, franchise); err != nil {
		return nil, err
	}

	response := model.ProductToResponse(*product)
	return &response, nil
}

func (s *FranchiseService) DeleteProduct(ctx context.Context, franchiseID, branchID, productID string) error {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return err
	}
	branch, err := findBranch(franchise, branchID)
	if err != nil {
		return err
	}

	kept := branch.Products[:0]
	removed := false
	for _, product := range branch.Products {
		if product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, product)
	}
	if !removed {
		return fmt.Errorf("%w: product with id %q not found", ErrNotFound, productID)
	}
	branch.Products = kept
	return s.franchises.SaveFranchise(ctx, franchise)
}

// GetTopProductPerBranch reports, for every active branch of an active
// franchise, the product with the highest stock. Branches without products
// are skipped; an inactive franchise yields an empty report.
func (s *FranchiseService) GetTopProductPerBranch(ctx context.Context, franchiseID string) ([]model.TopProductPerBranchResponse, error) {
	franchise, err := s.findFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	report := []model.TopProductPerBranchResponse{}
	if !franchise.IsActive() {
		return report, nil
	}

	for _, branch := range franchise.Branches {
		if !branch.Active || len(branch.Products) == 0 {
			continue
		}
		top := branch.Products[0]
		for _, product := range branch.Products[1:] {
			if product.Stock > top.Stock {
				top = product
			}
		}
		report = append(report, model.TopProductPerBranchResponse{
			BranchID:   branch.ID,
			BranchName: branch.Name,
			Product:    model.ProductToResponse(top),
		})
	}
	return report, nil
}

func (s *FranchiseService) findFranchise(ctx context.Context, franchiseID string) (*model.Franchise, error) {
	franchise, err := s.franchises.FindFranchiseByID(ctx, franchiseID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, fmt.Errorf("%w: franchise with id %q not found", ErrNotFound, franchiseID)
		}
		return nil, err
	}
	return franchise, nil
}

func (s *FranchiseService) ensureNameFree(ctx context.Context, name, excludeID string) error {
	existing, err := s.franchises.FindFranchiseByName(ctx, name)
	if err != nil {
		if db.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return fmt.Errorf("%w: a franchise named %q already exists", ErrConflict, name)
	}
	return nil
}

func findBranch(franchise *model.Franchise, branchID string) (*model.Branch, error) {
	for i := range franchise.Branches {
		if franchise.Branches[i].ID == branchID {
			return &franchise.Branches[i], nil
		}
	}
	return nil, fmt.Errorf("%w: branch with id %q not found", ErrNotFound, branchID)
}

func findProduct(branch *model.Branch, productID string) (*model.Product, error) {
	for i := range branch.Products {
		if branch.Products[i].ID == productID {
			return &branch.Products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: product with id %q not found", ErrNotFound, productID)
}

func requireName(raw, message string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, message)
	}
	return name, nil
}

func requireStock(stock *int) (int, error) {
	if stock == nil {
		return 0, fmt.Errorf("%w: stock value is required", ErrInvalidInput)
	}
	if *stock < 0 {
		return 0, fmt.Errorf("%w: stock must be greater than or equal to 0", ErrInvalidInput)
	}
	return *stock, nil
}
