package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

// TransactionUseCase acceso al log de movimientos (solo lectura e inserción).
type TransactionUseCase struct {
	tables gateway.TableClient
	log    *logger.Logger
	now    func() time.Time
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(tables gateway.TableClient, log *logger.Logger) *TransactionUseCase {
	return &TransactionUseCase{tables: tables, log: log, now: time.Now}
}

// FetchTransactions devuelve los movimientos del más reciente al más antiguo.
func (uc *TransactionUseCase) FetchTransactions(ctx context.Context) ([]entity.Transaction, error) {
	rows, err := uc.tables.From(gateway.TableTransactions).Select(ctx, gateway.Query{OrderBy: "date", Desc: true})
	if err == nil {
		var txs []entity.Transaction
		if txs, err = decodeRows[entity.Transaction](gateway.TableTransactions, rows); err == nil {
			return txs, nil
		}
	}
	uc.log.Error().Err(err).Msg("Error fetching transactions")
	return nil, err
}

// AddTransaction agrega un movimiento; sin fecha se usa el instante actual.
func (uc *TransactionUseCase) AddTransaction(ctx context.Context, tx entity.Transaction) (*entity.Transaction, error) {
	if tx.Date.IsZero() {
		tx.Date = uc.now().UTC()
	}
	row, err := uc.tables.From(gateway.TableTransactions).Insert(ctx, gateway.Row{
		"type":         tx.Type,
		"plywood_id":   tx.PlywoodID,
		"quantity":     tx.Quantity,
		"date":         tx.Date,
		"performed_by": tx.PerformedBy,
		"reason":       tx.Reason,
		"notes":        nullableString(tx.Notes),
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("Error adding transaction")
		return nil, err
	}
	var out entity.Transaction
	if err := decodeRow(row, &out); err != nil {
		uc.log.Error().Err(err).Msg("Error adding transaction")
		return nil, err
	}
	return &out, nil
}
