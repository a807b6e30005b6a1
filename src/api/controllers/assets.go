package controllers

import (
	"context"
	"fmt"

	"backoffice/src/models"
	"backoffice/src/schemas"
	"backoffice/src/utils"
)

func (c *Controller) GetAllAssets(ctx context.Context, skip, limit int) ([]models.Asset, error) {
	return c.Assets.GetAll(ctx, skip, limit)
}

func (c *Controller) GetAssetByID(ctx context.Context, id int) (*models.Asset, error) {
	asset, err := c.Assets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, utils.NotFound(fmt.Sprintf("asset %d not found", id))
	}
	return asset, nil
}

func (c *Controller) GetAssetByTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	asset, err := c.Assets.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, utils.NotFound(fmt.Sprintf("asset with ticker %s not found", ticker))
	}
	return asset, nil
}

func (c *Controller) CreateAsset(ctx context.Context, req schemas.AssetCreateRequest) (*models.Asset, error) {
	if err := schemas.Validate.Struct(req); err != nil {
		return nil, utils.BadRequest(err.Error())
	}
	return c.AssetService.CreateAsset(ctx, req)
}

func (c *Controller) CreateAssetFromTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	asset, err := c.AssetService.CreateFromTicker(ctx, ticker)
	if err != nil {
		return nil, utils.BadRequest(err.Error())
	}
	return asset, nil
}

func (c *Controller) UpdateAsset(ctx context.Context, id int, patch schemas.AssetUpdateRequest) (*models.Asset, error) {
	asset, err := c.Assets.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, utils.NotFound(fmt.Sprintf("asset %d not found", id))
	}
	return asset, nil
}

func (c *Controller) DeleteAsset(ctx context.Context, id int) (*models.Asset, error) {
	asset, err := c.Assets.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, utils.NotFound(fmt.Sprintf("asset %d not found", id))
	}
	return asset, nil
}

func (c *Controller) SearchAssetsByTicker(ctx context.Context, ticker string) ([]models.Asset, error) {
	return c.Assets.SearchByTicker(ctx, ticker)
}
