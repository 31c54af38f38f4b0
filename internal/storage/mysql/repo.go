// Package mysql persists listings. The ingestor writes CSV rows here; the
// API can source its in-memory dataset from this table instead of the file.
package mysql

import (
	"context"
	"database/sql"
	"strings"

	"housing_finder/internal/domain"
)

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

const listingCols = 19

func (r *Repo) UpsertListings(ctx context.Context, ls []domain.Listing) error {
	if len(ls) == 0 {
		return nil
	}
	values := make([]string, 0, len(ls))
	args := make([]any, 0, len(ls)*listingCols)
	for _, l := range ls {
		values = append(values, "(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			l.ID,
			l.Address,
			l.City,
			l.State,
			l.ZipCode,
			valF64(l.MonthlyRent),
			l.Bedrooms,
			l.AgentName,
			l.AgentPhone,
			l.AgentEmail,
			l.LanguagesSpoken,
			l.Section8Accepted,
			l.HUDApproved,
			l.LowIncomeEligible,
			l.NearbyTransit,
			l.UtilitiesIncluded,
			l.PetsAllowed,
			l.AccessibilityFeatures,
			valF64(l.IncomeLimitAMI),
		)
	}
	sqlStr := insertListingsPrefix + strings.Join(values, ",") + insertListingsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) GetListing(ctx context.Context, id int64) (domain.Listing, error) {
	row := r.db.QueryRowContext(ctx, getListingSQL, id)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return domain.Listing{}, domain.ErrNotFound
	}
	return l, err
}

func (r *Repo) LoadAll(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, loadAllSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanListing(row scanner) (domain.Listing, error) {
	var l domain.Listing
	var rent, ami sql.NullFloat64
	if err := row.Scan(
		&l.ID,
		&l.Address,
		&l.City,
		&l.State,
		&l.ZipCode,
		&rent,
		&l.Bedrooms,
		&l.AgentName,
		&l.AgentPhone,
		&l.AgentEmail,
		&l.LanguagesSpoken,
		&l.Section8Accepted,
		&l.HUDApproved,
		&l.LowIncomeEligible,
		&l.NearbyTransit,
		&l.UtilitiesIncluded,
		&l.PetsAllowed,
		&l.AccessibilityFeatures,
		&ami,
	); err != nil {
		return domain.Listing{}, err
	}
	if rent.Valid {
		f := rent.Float64
		l.MonthlyRent = &f
	}
	if ami.Valid {
		f := ami.Float64
		l.IncomeLimitAMI = &f
	}
	return l, nil
}
