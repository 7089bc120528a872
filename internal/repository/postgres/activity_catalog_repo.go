package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"mergingtonactivities/internal/domain"
)

type activityCatalogRepository struct {
	DB *sql.DB
}

// NewActivityCatalogRepository returns a domain.ActivityCatalogSource that reads the
// activity definitions from the activities table. Rosters are never written back.
func NewActivityCatalogRepository(db *sql.DB) domain.ActivityCatalogSource {
	return &activityCatalogRepository{DB: db}
}

func (r *activityCatalogRepository) LoadCatalog(ctx context.Context) (domain.ActivityCatalog, error) {
	query := `
		SELECT name, description, schedule, max_participants, participants
		FROM activities
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	catalog := make(domain.ActivityCatalog)
	for rows.Next() {
		a := &domain.Activity{}
		var participants []string
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, pq.Array(&participants)); err != nil {
			return nil, err
		}
		a.Participants = participants
		if a.Participants == nil {
			a.Participants = []string{}
		}
		catalog[a.Name] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Open connects to Postgres with the lib/pq driver and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
