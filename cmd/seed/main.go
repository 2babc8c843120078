// Seed aplica el esquema y carga los datos de demostración en PostgreSQL en una sola transacción.
//
//	go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/jhoicas/plywood-inventory/internal/application/seed"
	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/postgres"
	"github.com/jhoicas/plywood-inventory/pkg/config"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	var res seed.Result
	err = postgres.NewTxRunner(pool).Run(ctx, func(tables gateway.TableClient) error {
		var err error
		res, err = seed.Run(ctx, seed.Writers{
			Plywood:      usecase.NewPlywoodUseCase(tables, log),
			Suppliers:    usecase.NewSupplierUseCase(tables, log),
			Transactions: usecase.NewTransactionUseCase(tables, log),
		})
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	if res.Skipped {
		log.Info().Msg("la base ya tiene datos, seed omitido")
		return
	}
	log.Info().
		Int("suppliers", res.Suppliers).
		Int("sheets", res.Sheets).
		Int("transactions", res.Transactions).
		Msg("datos de demostración cargados")
}
