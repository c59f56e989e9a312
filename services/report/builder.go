package report

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"payment-reports-api/models"
)

// RateSource provides the PLN mid-rate for a currency on a calendar date.
// Satisfied by *exchange.Cache.
type RateSource interface {
	Rate(ctx context.Context, currency string, date time.Time) (float64, error)
}

// Builder turns a raw submission into a chronologically sorted report, or
// into the aggregated list of per-item validation errors.
type Builder struct {
	rates RateSource
}

func NewBuilder(rates RateSource) *Builder {
	return &Builder{rates: rates}
}

// Generate validates every item of every submitted type and either returns
// the merged report or the error maps. The submission is atomic: a single
// invalid item discards all valid ones.
//
// Accumulation order is dp, card, pay_by_link, item order within each type;
// the stable sort preserves it for equal timestamps.
func (b *Builder) Generate(ctx context.Context, req models.ReportRequest) ([]models.ReportEntry, []models.FieldErrors) {
	groups := []struct {
		typ   string
		items []json.RawMessage
	}{
		{models.TypeDirectPayment, req.Direct},
		{models.TypeCardPayment, req.Card},
		{models.TypePayByLink, req.PayByLink},
	}

	entries := make([]models.ReportEntry, 0)
	var allErrs []models.FieldErrors

	for _, g := range groups {
		for _, raw := range g.items {
			entry, errs := normalizeItem(g.typ, raw)
			if len(errs) > 0 {
				allErrs = append(allErrs, errs)
				continue
			}
			entries = append(entries, *entry)
		}
	}

	if len(allErrs) > 0 {
		return nil, allErrs
	}

	// Conversion runs only for fully valid submissions, so rejected batches
	// never touch the rate provider.
	for i := range entries {
		b.convertToPLN(ctx, &entries[i])
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}

// convertToPLN fills in amount_in_pln, truncating to whole minor units.
// A provider outage only costs the converted amount, never the record.
func (b *Builder) convertToPLN(ctx context.Context, entry *models.ReportEntry) {
	rate, err := b.rates.Rate(ctx, entry.Currency, entry.CreatedAt)
	if err != nil {
		log.Printf("Warning: PLN conversion unavailable for %s on %s: %v",
			entry.Currency, entry.CreatedAt.Format("2006-01-02"), err)
		return
	}
	converted := int64(float64(entry.Amount) * rate)
	entry.AmountInPLN = &converted
}
