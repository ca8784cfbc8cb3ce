package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/shopspring/decimal"
)

// parseStatus matches raw case-insensitively against the allowed workflow statuses.
func parseStatus[S ~string](raw string, allowed ...S) (S, error) {
	raw = strings.TrimSpace(raw)
	for _, s := range allowed {
		if strings.EqualFold(raw, string(s)) {
			return s, nil
		}
	}
	names := make([]string, len(allowed))
	for i, s := range allowed {
		names[i] = string(s)
	}
	return "", apperrors.Validationf("status must be one of %s", strings.Join(names, ", "))
}

// transitions lists the statuses each status may move to. Terminal statuses map to nil. A status
// missing from the table may move anywhere, and re-applying the current status is always allowed.
type transitions[S ~string] map[S][]S

func (t transitions[S]) check(from, to S) error {
	if from == to {
		return nil
	}
	next, known := t[from]
	if !known || slices.Contains(next, to) {
		return nil
	}
	return apperrors.Validationf("status cannot change from %s to %s", from, to)
}

// requireReference checks that id names an existing document of a related type.
func requireReference[T any](ctx context.Context, base *BaseService, repo portsrepo.DocumentReader[T], field, id string) error {
	if repo == nil || id == "" {
		return nil
	}
	if err := utils.ValidateObjectID(field, id); err != nil {
		return err
	}
	if _, err := repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Validationf("%s %s does not exist", field, id)
		}
		base.LogError(ctx, err, "Failed to resolve reference", slog.String("field", field), slog.String("id", id))
		return err
	}
	return nil
}

func sumDecimals[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(value(it))
	}
	return total
}

func purchaseRequestTotal(items []domain.PurchaseRequestItem) decimal.Decimal {
	return sumDecimals(items, func(it domain.PurchaseRequestItem) decimal.Decimal {
		if it.EstimatedCost == nil {
			return decimal.Zero
		}
		return it.Quantity.Mul(*it.EstimatedCost)
	})
}
