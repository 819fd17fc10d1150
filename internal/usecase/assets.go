package usecase

import (
	"context"
	"fmt"

	"github.com/NasaVasa/cryptobot/internal/domain"
)

// lookupAsset resolves input to an asset id and confirms the oracle knows it.
func lookupAsset(ctx context.Context, oracle domain.PriceOracle, input string) (string, domain.Quote, error) {
	assetID := domain.ResolveAssetID(input)
	if assetID == "" {
		return "", domain.Quote{}, fmt.Errorf("%w: empty asset", domain.ErrAssetNotFound)
	}
	quotes, err := oracle.FetchQuotes(ctx, []string{assetID})
	if err != nil {
		return assetID, domain.Quote{}, err
	}
	quote, ok := quotes[assetID]
	if !ok {
		return assetID, domain.Quote{}, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, assetID)
	}
	return assetID, quote, nil
}

func uniqueAssetIDs[T any](items []T, id func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		assetID := id(item)
		if _, ok := seen[assetID]; ok {
			continue
		}
		seen[assetID] = struct{}{}
		ids = append(ids, assetID)
	}
	return ids
}
