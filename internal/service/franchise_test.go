package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franchise-api/backend/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func createFranchise(t *testing.T, svc *FranchiseService, name string) model.FranchiseResponse {
	t.Helper()
	resp, err := svc.CreateFranchise(context.Background(), model.CreateFranchiseRequest{Name: name})
	require.NoError(t, err)
	return *resp
}

func addBranch(t *testing.T, svc *FranchiseService, franchiseID, name string) model.BranchResponse {
	t.Helper()
	resp, err := svc.AddBranch(context.Background(), franchiseID, model.CreateBranchRequest{Name: name})
	require.NoError(t, err)
	return *resp
}

func addProduct(t *testing.T, svc *FranchiseService, franchiseID, branchID, name string, stock int) model.ProductResponse {
	t.Helper()
	resp, err := svc.AddProduct(context.Background(), franchiseID, branchID, model.CreateProductRequest{
		Name: name, Stock: intPtr(stock),
	})
	require.NoError(t, err)
	return *resp
}

func TestCreateFranchise(t *testing.T) {
	svc := NewFranchiseService(newMemStore())

	resp := createFranchise(t, svc, "  Central  ")
	assert.Equal(t, "Central", resp.Name)
	assert.True(t, resp.Active, "franchises start active by default")
	assert.Empty(t, resp.Branches)

	_, err := svc.CreateFranchise(context.Background(), model.CreateFranchiseRequest{Name: "CENTRAL"})
	assert.ErrorIs(t, err, ErrConflict, "name match is case-insensitive")
}

func TestCreateFranchiseInactive(t *testing.T) {
	svc := NewFranchiseService(newMemStore())
	resp, err := svc.CreateFranchise(context.Background(), model.CreateFranchiseRequest{
		Name: "Dormant", Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestUpdateFranchiseName(t *testing.T) {
	svc := NewFranchiseService(newMemStore())
	created := createFranchise(t, svc, "Central")
	createFranchise(t, svc, "North")

	// Re-casing the same name is not a conflict with itself.
	resp, err := svc.UpdateFranchiseName(context.Background(), created.ID, model.UpdateFranchiseNameRequest{Name: "CENTRAL"})
	require.NoError(t, err)
	assert.Equal(t, "Central", resp.Name, "an equal-fold rename is a no-op")

	_, err = svc.UpdateFranchiseName(context.Background(), created.ID, model.UpdateFranchiseNameRequest{Name: "north"})
	assert.ErrorIs(t, err, ErrConflict)

	resp, err = svc.UpdateFranchiseName(context.Background(), created.ID, model.UpdateFranchiseNameRequest{Name: "Downtown"})
	require.NoError(t, err)
	assert.Equal(t, "Downtown", resp.Name)
}

func TestDeleteFranchise(t *testing.T) {
	svc := NewFranchiseService(newMemStore())
	created := createFranchise(t, svc, "Central")

	require.NoError(t, svc.DeleteFranchise(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteFranchise(context.Background(), created.ID), ErrNotFound)
}

func TestAddBranchGating(t *testing.T) {
	svc := NewFranchiseService(newMemStore())
	created := createFranchise(t, svc, "Central")

	addBranch(t, svc, created.ID, "Main Street")
	_, err := svc.AddBranch(context.Background(), created.ID, model.CreateBranchRequest{Name: "MAIN STREET"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.UpdateFranchiseStatus(context.Background(), created.ID, false)
	require.NoError(t, err)
	_, err = svc.AddBranch(context.Background(), created.ID, model.CreateBranchRequest{Name: "Second Street"})
	assert.ErrorIs(t, err, ErrInvalidInput, "inactive franchises do not grow")
}

func TestBranchLifecycle(t *testing.T) {
	svc := NewFranchiseService(newMemStore())
	created := createFranchise(t, svc, "Central")
	branch := addBranch(t, svc, created.ID, "Main Street")
	addBranch(t, svc, created.ID, "Harbor")

	_, err := svc.UpdateBranchName(context.Background(), created.ID, branch.ID, model.UpdateBranchNameRequest{Name: "harbor"})
	assert.ErrorIs(t, err, ErrConflict)

	renamed, err := svc.UpdateBranchName(context.Background(), created.ID, branch.ID, model.UpdateBranchNameRequest{Name: "Station"})
	require.NoError(t, err)
	assert.Equal(t, "Station", renamed.Name)

	updated, err := svc.UpdateBranchStatus(context.Background(), created.ID, branch.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	require.NoError(t, svc.DeleteBranch(context.Background(), created.ID, branch.ID))
	err = svc.DeleteBranch(context.Background(), created.ID, branch.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddProductGating(t *testing.T) {
	svc := NewFranchiseService(newMemStore())
	created := createFranchise(t, svc, "Central")
	branch := addBranch(t, svc, created.ID, "Main Street")

	_, err := svc.AddProduct(context.Background(), created.ID, branch.ID, model.CreateProductRequest{
		Name: "Espresso", Stock: intPtr(-1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "stock may not be negative")

	addProduct(t, svc, created.ID, branch.ID, "Espresso", 10)
	_, err = svc.AddProduct(context.Background(), created.ID, branch.ID, model.CreateProductRequest{
		Name: "ESPRESSO", Stock: intPtr(5),
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.UpdateBranchStatus(context.Background(), created.ID, branch.ID, false)
	require.NoError(t, err)
	_, err = svc.AddProduct(context.Background(), created.ID, branch.ID, model.CreateProductRequest{
		Name: "Latte", Stock: intPtr(3),
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "inactive branches do not stock new products")
}

func TestProductUpdates(t *testing.T) {
	svc := NewFranchiseService(newMemStore())
	created := createFranchise(t, svc, "Central")
	branch := addBranch(t, svc, created.ID, "Main Street")
	product := addProduct(t, svc, created.ID, branch.ID, "Espresso", 10)

	resp, err := svc.UpdateProductStock(context.Background(), created.ID, branch.ID, product.ID, intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock, "zero stock is allowed")

	_, err = svc.UpdateProductStock(context.Background(), created.ID, branch.ID, product.ID, intPtr(-5))
	assert.ErrorIs(t, err, ErrInvalidInput)

	renamed, err := svc.UpdateProductName(context.Background(), created.ID, branch.ID, product.ID, model.UpdateProductNameRequest{Name: "Doppio"})
	require.NoError(t, err)
	assert.Equal(t, "Doppio", renamed.Name)

	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID, branch.ID, product.ID))
	err = svc.DeleteProduct(context.Background(), created.ID, branch.ID, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTopProductPerBranch(t *testing.T) {
	svc := NewFranchiseService(newMemStore())
	created := createFranchise(t, svc, "Central")

	stocked := addBranch(t, svc, created.ID, "Main Street")
	addProduct(t, svc, created.ID, stocked.ID, "Espresso", 10)
	addProduct(t, svc, created.ID, stocked.ID, "Latte", 25)
	addProduct(t, svc, created.ID, stocked.ID, "Mocha", 7)

	addBranch(t, svc, created.ID, "Harbor")

	parked := addBranch(t, svc, created.ID, "Station")
	addProduct(t, svc, created.ID, parked.ID, "Tea", 99)
	_, err := svc.UpdateBranchStatus(context.Background(), created.ID, parked.ID, false)
	require.NoError(t, err)

	report, err := svc.GetTopProductPerBranch(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, report, 1, "empty and inactive branches are skipped")
	assert.Equal(t, stocked.ID, report[0].BranchID)
	assert.Equal(t, "Latte", report[0].Product.Name)
	assert.Equal(t, 25, report[0].Product.Stock)
}

func TestGetTopProductPerBranchInactiveFranchise(t *testing.T) {
	svc := NewFranchiseService(newMemStore())
	created := createFranchise(t, svc, "Central")
	branch := addBranch(t, svc, created.ID, "Main Street")
	addProduct(t, svc, created.ID, branch.ID, "Espresso", 10)

	_, err := svc.UpdateFranchiseStatus(context.Background(), created.ID, false)
	require.NoError(t, err)

	report, err := svc.GetTopProductPerBranch(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, report)
}
