// Siembra el catálogo de estados del workflow en evt_estados. Es idempotente:
// el upsert por clave actualiza nombre, orden y reglas sin duplicar filas ni
// cambiar los IDs ya referenciados por eventos existentes.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eventika/eventos-api/internal/domain/workflow"
	"github.com/eventika/eventos-api/internal/infrastructure/postgres"
	"github.com/eventika/eventos-api/pkg/config"
	"github.com/eventika/eventos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stateRepo := postgres.NewWorkflowStateRepository(pool)

	now := time.Now()
	for _, s := range workflow.DefaultCatalog() {
		s.ID = uuid.New().String()
		s.CreatedAt = now
		if err := stateRepo.Upsert(ctx, &s); err != nil {
			log.Fatal().Err(err).Str("clave", s.Clave).Msg("sembrar estado")
		}
		log.Info().
			Str("clave", s.Clave).
			Int("orden", s.Orden).
			Bool("terminal", s.Terminal).
			Msg("estado sembrado")
	}

	log.Info().Msg("catálogo de estados sembrado")
}
