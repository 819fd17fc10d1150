package usecase

import (
	"context"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"go.uber.org/zap"
)

type FavoritesUsecase struct {
	favorites domain.FavoriteStore
	oracle    domain.PriceOracle
	logger    *zap.Logger
}

type FavoriteView struct {
	AssetID string
	Quote   *domain.Quote
}

func NewFavoritesUsecase(favorites domain.FavoriteStore, oracle domain.PriceOracle, logger *zap.Logger) *FavoritesUsecase {
	return &FavoritesUsecase{favorites: favorites, oracle: oracle, logger: logger}
}

func (u *FavoritesUsecase) AddFavorite(ctx context.Context, userID domain.UserID, asset string) (string, domain.FavoriteResult, error) {
	assetID, _, err := lookupAsset(ctx, u.oracle, asset)
	if err != nil {
		return assetID, 0, err
	}
	return assetID, u.favorites.AddFavorite(userID, assetID), nil
}

func (u *FavoritesUsecase) RemoveFavorite(userID domain.UserID, asset string) (string, error) {
	assetID := domain.ResolveAssetID(asset)
	return assetID, u.favorites.RemoveFavorite(userID, assetID)
}

func (u *FavoritesUsecase) ListFavorites(ctx context.Context, userID domain.UserID) []FavoriteView {
	favorites := u.favorites.ListFavorites(userID)
	views := make([]FavoriteView, 0, len(favorites))
	if len(favorites) == 0 {
		return views
	}

	quotes, err := u.oracle.FetchQuotes(ctx, favorites)
	if err != nil {
		u.logger.Warn("favorite prices unavailable", zap.Int64("user_id", userID), zap.Error(err))
	}
	for _, assetID := range favorites {
		view := FavoriteView{AssetID: assetID}
		if quote, ok := quotes[assetID]; ok {
			view.Quote = &quote
		}
		views = append(views, view)
	}
	return views
}
