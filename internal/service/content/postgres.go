package content

import (
	"portfolio-site/internal/repository/experience"
	"portfolio-site/internal/repository/hackathon"
	"portfolio-site/internal/repository/link"
	"portfolio-site/internal/repository/ordering"
	"portfolio-site/internal/repository/project"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStores binds every content repository to the same pool.
func PostgresStores(pool *pgxpool.Pool) Stores {
	return Stores{
		Projects:    project.NewPostgres(pool),
		Hackathons:  hackathon.NewPostgres(pool),
		Experiences: experience.NewPostgres(pool),
		Links:       link.NewPostgres(pool),
		Ordering:    ordering.NewPostgres(pool),
	}
}
