package bidding

import (
	"fmt"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// priceSelection resolves the buyer's variation and services against the listing
// and returns the priced services with the bid total.
func priceSelection(auction model.Auction, variation string, serviceKeys []string, amount decimal.Decimal) ([]model.SelectedService, decimal.Decimal, error) {
	if _, ok := auction.Variations[variation]; !ok {
		return nil, decimal.Zero, fmt.Errorf("service: %w - unknown variation %q", biddingerrors.ErrInvalidSelection, variation)
	}

	total := amount
	selected := make([]model.SelectedService, 0, len(serviceKeys))
	seen := make(map[string]struct{}, len(serviceKeys))
	for _, key := range serviceKeys {
		if _, dup := seen[key]; dup {
			return nil, decimal.Zero, fmt.Errorf("service: %w - service %q selected twice", biddingerrors.ErrInvalidSelection, key)
		}
		seen[key] = struct{}{}

		opt, ok := auction.Services[key]
		if !ok || !opt.Enabled {
			return nil, decimal.Zero, fmt.Errorf("service: %w - service %q is not offered", biddingerrors.ErrInvalidSelection, key)
		}
		selected = append(selected, model.SelectedService{Key: key, Label: opt.Label, Price: opt.Price})
		total = total.Add(opt.Price)
	}
	return selected, total, nil
}

// validateDraft checks a new listing before it is stored
func validateDraft(draft model.AuctionDraft) error {
	if draft.ProductID == "" || draft.ProductName == "" {
		return fmt.Errorf("service: %w - missing product id or name", biddingerrors.ErrInvalidAuction)
	}
	if draft.StartingPrice.IsNegative() {
		return fmt.Errorf("service: %w - negative starting price", biddingerrors.ErrInvalidAuction)
	}
	if !draft.EndTime.After(draft.StartTime) {
		return fmt.Errorf("service: %w - end time must be after start time", biddingerrors.ErrInvalidAuction)
	}
	if len(draft.Variations) == 0 {
		return fmt.Errorf("service: %w - at least one variation is required", biddingerrors.ErrInvalidAuction)
	}
	for label, price := range draft.Variations {
		if label == "" || price.IsNegative() {
			return fmt.Errorf("service: %w - invalid variation %q", biddingerrors.ErrInvalidAuction, label)
		}
	}
	for key, opt := range draft.Services {
		if key == "" || opt.Price.IsNegative() {
			return fmt.Errorf("service: %w - invalid service %q", biddingerrors.ErrInvalidAuction, key)
		}
	}
	return nil
}
