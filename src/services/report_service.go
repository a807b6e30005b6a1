package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"backoffice/src/models"
	"backoffice/src/repositories"
	"backoffice/src/schemas"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportCurrency is the currency label stamped on every exported movement row.
const ExportCurrency = "BRL"

var exportHeader = []string{
	"ID", "Date", "Type", "Amount", "Currency", "Note",
	"Client Name", "Client Email", "Created At",
}

type ReportServiceI interface {
	GetMovementSummary(ctx context.Context, filter schemas.PeriodFilter) (*schemas.MovementSummary, error)
	GetOfficeSummary(ctx context.Context, filter schemas.PeriodFilter) (*schemas.OfficeSummary, error)
	GetClientBalance(ctx context.Context, clientID int, asOfDate *time.Time) (decimal.Decimal, error)
	ExportClientMovementsCSV(ctx context.Context, clientID int, filter schemas.PeriodFilter) (*bytes.Buffer, error)
	ExportClientMovementsXLSX(ctx context.Context, clientID int, filter schemas.PeriodFilter) (*excelize.File, error)
}

type ReportService struct {
	movements repositories.MovementRepository
	clients   repositories.ClientRepository
}

func NewReportService(movements repositories.MovementRepository, clients repositories.ClientRepository) *ReportService {
	return &ReportService{movements: movements, clients: clients}
}

// GetMovementSummary reduces the movements matching the filter into totals.
// Sums are exact decimal arithmetic at the stored two-decimal precision.
func (rs *ReportService) GetMovementSummary(ctx context.Context, filter schemas.PeriodFilter) (*schemas.MovementSummary, error) {
	movements, err := rs.movements.GetFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalDeposits := decimal.Zero
	totalWithdrawals := decimal.Zero
	for _, movement := range movements {
		if movement.Type == models.MovementDeposit {
			totalDeposits = totalDeposits.Add(movement.Amount)
		} else {
			totalWithdrawals = totalWithdrawals.Add(movement.Amount)
		}
	}

	return &schemas.MovementSummary{
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
		NetFlow:          totalDeposits.Sub(totalWithdrawals),
		MovementCount:    len(movements),
	}, nil
}

// GetOfficeSummary computes the office-wide totals plus a per-client breakdown
// using the same date bounds. The breakdown is ordered by client id.
func (rs *ReportService) GetOfficeSummary(ctx context.Context, filter schemas.PeriodFilter) (*schemas.OfficeSummary, error) {
	overallFilter := schemas.PeriodFilter{StartDate: filter.StartDate, EndDate: filter.EndDate}
	overall, err := rs.GetMovementSummary(ctx, overallFilter)
	if err != nil {
		return nil, err
	}

	clients, err := rs.clients.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	clientSummaries := make([]schemas.ClientSummary, 0, len(clients))
	for _, client := range clients {
		clientID := client.ID
		clientFilter := schemas.PeriodFilter{
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
			ClientID:  &clientID,
		}
		summary, err := rs.GetMovementSummary(ctx, clientFilter)
		if err != nil {
			return nil, err
		}
		clientSummaries = append(clientSummaries, schemas.ClientSummary{
			ClientID:    client.ID,
			ClientName:  client.Name,
			ClientEmail: client.Email,
			Summary:     *summary,
		})
	}

	return &schemas.OfficeSummary{
		TotalDeposits:    overall.TotalDeposits,
		TotalWithdrawals: overall.TotalWithdrawals,
		NetFlow:          overall.NetFlow,
		TotalMovements:   overall.MovementCount,
		ClientSummaries:  clientSummaries,
	}, nil
}

// GetClientBalance sums +deposits and -withdrawals over the client's movements
// dated on or before asOfDate. A nil asOfDate covers all movements.
func (rs *ReportService) GetClientBalance(ctx context.Context, clientID int, asOfDate *time.Time) (decimal.Decimal, error) {
	filter := schemas.PeriodFilter{ClientID: &clientID, EndDate: asOfDate}
	movements, err := rs.movements.GetFiltered(ctx, filter)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, movement := range movements {
		if movement.Type == models.MovementDeposit {
			balance = balance.Add(movement.Amount)
		} else {
			balance = balance.Sub(movement.Amount)
		}
	}
	return balance, nil
}

// ExportClientMovementsCSV renders the client's movements, newest first, into
// an in-memory CSV ready for download.
func (rs *ReportService) ExportClientMovementsCSV(ctx context.Context, clientID int, filter schemas.PeriodFilter) (*bytes.Buffer, error) {
	rows, err := rs.exportRows(ctx, clientID, filter)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf, nil
}

// ExportClientMovementsXLSX renders the same export as a single-sheet workbook.
func (rs *ReportService) ExportClientMovementsXLSX(ctx context.Context, clientID int, filter schemas.PeriodFilter) (*excelize.File, error) {
	rows, err := rs.exportRows(ctx, clientID, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(exportHeader))
	for i, col := range exportHeader {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (rs *ReportService) exportRows(ctx context.Context, clientID int, filter schemas.PeriodFilter) ([][]string, error) {
	filter.ClientID = &clientID
	movements, err := rs.movements.GetByPeriod(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(movements))
	for _, movement := range movements {
		note := ""
		if movement.Note != nil {
			note = *movement.Note
		}
		date := movement.Date.Format("2006-01-02 15:04:05")
		rows = append(rows, []string{
			fmt.Sprintf("%d", movement.ID),
			date,
			movement.Type,
			movement.Amount.StringFixed(2),
			ExportCurrency,
			note,
			movement.ClientName,
			movement.ClientEmail,
			// There is no separate creation timestamp on movements; the
			// export repeats the movement date.
			date,
		})
	}
	return rows, nil
}
