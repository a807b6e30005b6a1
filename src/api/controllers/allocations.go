package controllers

import (
	"context"
	"fmt"

	"backoffice/src/models"
	"backoffice/src/schemas"
	"backoffice/src/utils"
)

func (c *Controller) GetAllAllocations(ctx context.Context, skip, limit int) ([]models.Allocation, error) {
	return c.Allocations.GetAll(ctx, skip, limit)
}

func (c *Controller) GetAllocationByID(ctx context.Context, id int) (*models.Allocation, error) {
	allocation, err := c.Allocations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, utils.NotFound(fmt.Sprintf("allocation %d not found", id))
	}
	return allocation, nil
}

func (c *Controller) GetClientAllocations(ctx context.Context, clientID int) ([]schemas.AllocationWithAsset, error) {
	return c.Allocations.GetByClientID(ctx, clientID)
}

func (c *Controller) GetClientAllocationByAsset(ctx context.Context, clientID, assetID int) (*models.Allocation, error) {
	allocation, err := c.Allocations.GetByClientAndAsset(ctx, clientID, assetID)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, utils.NotFound(fmt.Sprintf("no allocation for client %d and asset %d", clientID, assetID))
	}
	return allocation, nil
}

// CreateAllocation resolves the asset reference before recording the lot. A
// reference that resolves neither by id nor through the ticker lookup rejects
// the whole creation.
func (c *Controller) CreateAllocation(ctx context.Context, req schemas.AllocationCreateRequest, ref schemas.AssetReference) (*models.Allocation, error) {
	if err := schemas.Validate.Struct(req); err != nil {
		return nil, utils.BadRequest(err.Error())
	}

	asset, err := c.AssetService.Resolve(ctx, ref)
	if err != nil {
		return nil, utils.BadRequest(err.Error())
	}

	allocation := &models.Allocation{
		ClientID: req.ClientID,
		AssetID:  asset.ID,
		Quantity: req.Quantity,
		BuyPrice: req.BuyPrice,
		BuyDate:  req.BuyDate,
	}
	if err := c.Allocations.Create(ctx, allocation); err != nil {
		return nil, err
	}
	return allocation, nil
}

func (c *Controller) UpdateAllocation(ctx context.Context, id int, patch schemas.AllocationUpdateRequest) (*models.Allocation, error) {
	allocation, err := c.Allocations.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, utils.NotFound(fmt.Sprintf("allocation %d not found", id))
	}
	return allocation, nil
}

func (c *Controller) DeleteAllocation(ctx context.Context, id int) (*models.Allocation, error) {
	allocation, err := c.Allocations.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, utils.NotFound(fmt.Sprintf("allocation %d not found", id))
	}
	return allocation, nil
}
