package infra

import (
	"context"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/config"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/repository"

	"github.com/rs/zerolog/log"
)

// OpenStore connects the store selected by STORE_DRIVER and returns it with
// its shutdown hook. The connection is verified before returning.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.MateriaRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("postgres connected")
		closeFn := func() {
			if err := CloseDatabase(db); err != nil {
				log.Error().Err(err).Msg("closing postgres")
			}
		}
		return repository.NewMateriaGormRepository(db), closeFn, nil

	default:
		client, db, err := NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewMateriaMongoRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		log.Info().Str("database", db.Name()).Msg("mongodb connected")
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("disconnecting mongodb")
			}
		}
		return repo, closeFn, nil
	}
}
