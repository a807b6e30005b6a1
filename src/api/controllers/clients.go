package controllers

import (
	"context"
	"errors"
	"fmt"

	"backoffice/src/models"
	"backoffice/src/schemas"
	"backoffice/src/utils"

	"github.com/jackc/pgx/v5/pgconn"
)

const fkViolationCode = "23503"

func (c *Controller) GetAllClients(ctx context.Context, skip, limit int) ([]models.Client, error) {
	return c.Clients.GetAll(ctx, skip, limit)
}

func (c *Controller) GetClientByID(ctx context.Context, id int) (*models.Client, error) {
	client, err := c.Clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, utils.NotFound(fmt.Sprintf("client %d not found", id))
	}
	return client, nil
}

func (c *Controller) CreateClient(ctx context.Context, req schemas.ClientCreateRequest) (*models.Client, error) {
	if err := schemas.Validate.Struct(req); err != nil {
		return nil, utils.BadRequest(err.Error())
	}

	client := &models.Client{
		Name:     req.Name,
		Email:    req.Email,
		IsActive: true,
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}
	if err := c.Clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (c *Controller) UpdateClient(ctx context.Context, id int, patch schemas.ClientUpdateRequest) (*models.Client, error) {
	if err := schemas.Validate.Struct(patch); err != nil {
		return nil, utils.BadRequest(err.Error())
	}

	client, err := c.Clients.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, utils.NotFound(fmt.Sprintf("client %d not found", id))
	}
	return client, nil
}

// DeleteClient hard-deletes the client. Clients with allocations or movements
// are kept by the foreign keys; that surfaces as a conflict.
func (c *Controller) DeleteClient(ctx context.Context, id int) (*models.Client, error) {
	client, err := c.Clients.Delete(ctx, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return nil, utils.Conflict(fmt.Sprintf("client %d still has allocations or movements", id))
		}
		return nil, err
	}
	if client == nil {
		return nil, utils.NotFound(fmt.Sprintf("client %d not found", id))
	}
	return client, nil
}

func (c *Controller) SearchClients(ctx context.Context, search schemas.ClientSearchRequest) ([]models.Client, error) {
	return c.Clients.Search(ctx, search)
}

func (c *Controller) CountClients(ctx context.Context, isActive *bool) (int, error) {
	return c.Clients.Count(ctx, isActive)
}
