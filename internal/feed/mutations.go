package feed

import (
	"context"
	"errors"
	"strings"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swipeshop-backend/pkg/errors"
)

// AddToCollection ensures the product exists and appends it to the list.
func (s *service) AddToCollection(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error {
	productID = strings.TrimSpace(productID)
	if err := validateMutation(userID, category, productID); err != nil {
		return err
	}
	found, err := s.catalog.FindByIDs(ctx, []string{productID})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "load product")
	}
	if len(found) == 0 {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, catalog.ErrNotFound, "product not found").
			WithDetails(map[string]any{"productId": productID})
	}
	if err := s.refs.Add(ctx, userID, category, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "add reference")
	}
	return nil
}

// RemoveFromCollection drops the product from the list regardless of prior state.
func (s *service) RemoveFromCollection(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error {
	productID = strings.TrimSpace(productID)
	if err := validateMutation(userID, category, productID); err != nil {
		return err
	}
	if err := s.refs.Remove(ctx, userID, category, productID); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "remove reference")
	}
	return nil
}

func validateMutation(userID string, category enums.CollectionCategory, productID string) error {
	if strings.TrimSpace(userID) == "" {
		return pkgerrors.New(pkgerrors.CodeForbidden, "caller identity is required")
	}
	if !category.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid collection category")
	}
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return nil
}
