package controllers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"backoffice/src/models"
	"backoffice/src/schemas"
	"backoffice/src/utils"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func (c *Controller) GetAllMovements(ctx context.Context, skip, limit int) ([]models.Movement, error) {
	return c.Movements.GetAll(ctx, skip, limit)
}

func (c *Controller) GetMovementByID(ctx context.Context, id int) (*models.Movement, error) {
	movement, err := c.Movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, utils.NotFound(fmt.Sprintf("movement %d not found", id))
	}
	return movement, nil
}

func (c *Controller) CreateMovement(ctx context.Context, req schemas.MovementCreateRequest) (*models.Movement, error) {
	if err := schemas.Validate.Struct(req); err != nil {
		return nil, utils.BadRequest(err.Error())
	}
	if req.Amount.IsNegative() {
		return nil, utils.BadRequest("amount must not be negative")
	}

	movement := &models.Movement{
		ClientID: req.ClientID,
		Type:     models.MovementType(req.Type),
		Amount:   req.Amount,
		Date:     req.Date,
		Note:     req.Note,
	}
	if err := c.Movements.Create(ctx, movement); err != nil {
		return nil, err
	}
	return movement, nil
}

func (c *Controller) UpdateMovement(ctx context.Context, id int, patch schemas.MovementUpdateRequest) (*models.Movement, error) {
	if err := schemas.Validate.Struct(patch); err != nil {
		return nil, utils.BadRequest(err.Error())
	}

	movement, err := c.Movements.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, utils.NotFound(fmt.Sprintf("movement %d not found", id))
	}
	return movement, nil
}

func (c *Controller) DeleteMovement(ctx context.Context, id int) (*models.Movement, error) {
	movement, err := c.Movements.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, utils.NotFound(fmt.Sprintf("movement %d not found", id))
	}
	return movement, nil
}

func (c *Controller) GetClientMovements(ctx context.Context, clientID int, startDate, endDate *time.Time) ([]models.Movement, error) {
	filter := schemas.PeriodFilter{
		StartDate: startDate,
		EndDate:   endDate,
		ClientID:  &clientID,
	}
	return c.Movements.GetFiltered(ctx, filter)
}

func (c *Controller) GetMovementsByPeriod(ctx context.Context, filter schemas.PeriodFilter) ([]schemas.MovementWithClient, error) {
	return c.Movements.GetByPeriod(ctx, filter)
}

func (c *Controller) GetMovementSummary(ctx context.Context, filter schemas.PeriodFilter) (*schemas.MovementSummary, error) {
	return c.ReportService.GetMovementSummary(ctx, filter)
}

func (c *Controller) GetOfficeSummary(ctx context.Context, filter schemas.PeriodFilter) (*schemas.OfficeSummary, error) {
	return c.ReportService.GetOfficeSummary(ctx, filter)
}

func (c *Controller) GetClientBalance(ctx context.Context, clientID int, asOfDate *time.Time) (decimal.Decimal, error) {
	return c.ReportService.GetClientBalance(ctx, clientID, asOfDate)
}

func (c *Controller) ExportClientMovementsCSV(ctx context.Context, clientID int, filter schemas.PeriodFilter) (*bytes.Buffer, error) {
	return c.ReportService.ExportClientMovementsCSV(ctx, clientID, filter)
}

func (c *Controller) ExportClientMovementsXLSX(ctx context.Context, clientID int, filter schemas.PeriodFilter) (*excelize.File, error) {
	return c.ReportService.ExportClientMovementsXLSX(ctx, clientID, filter)
}
