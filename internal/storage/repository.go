package storage

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/guttosm/stocktrend/internal/domain/models"
)

// PriceRepository defines the read-only contract over the stocks table.
type PriceRepository interface {
	GetPricesBySymbol(ctx context.Context, symbol string) ([]models.PriceObservation, error)
}

type priceRepository struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return &priceRepository{db: db}
}

const selectPricesBySymbol = `
	SELECT date, symbol, open, high, low, close, close_norm
	FROM stocks
	WHERE LOWER(symbol) = LOWER($1)
	ORDER BY date ASC
`

// GetPricesBySymbol returns every observation for symbol (case-insensitive),
// oldest first. An unknown symbol yields an empty, non-nil slice.
func (r *priceRepository) GetPricesBySymbol(ctx context.Context, symbol string) ([]models.PriceObservation, error) {
	rows, err := r.db.QueryContext(ctx, selectPricesBySymbol, symbol)
	if err != nil {
		return nil, fmt.Errorf("query prices for %q: %w", symbol, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.PriceObservation, 0)
	for rows.Next() {
		var (
			obs                                models.PriceObservation
			sym                                sql.NullString
			open, high, low, closeP, closeNorm sql.NullFloat64
		)
		if err := rows.Scan(&obs.Date, &sym, &open, &high, &low, &closeP, &closeNorm); err != nil {
			return nil, fmt.Errorf("scan price row: %w", err)
		}
		obs.Symbol = sym.String
		obs.Open = nullToNaN(open)
		obs.High = nullToNaN(high)
		obs.Low = nullToNaN(low)
		obs.Close = nullToNaN(closeP)
		obs.CloseNorm = nullToNaN(closeNorm)
		out = append(out, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price rows: %w", err)
	}

	return out, nil
}

// nullToNaN maps SQL NULL to an undefined value.
func nullToNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
