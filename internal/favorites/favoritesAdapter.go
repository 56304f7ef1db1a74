package favorites

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/catalog"
	"github.com/example/parfumgate/internal/upstream"
)

// favoritesAdapter speaks to both saved-product sets of the upstream
// API. Favorites and wishlist are behaviourally identical but stored
// and listed separately.
type favoritesAdapter struct {
	api *upstream.Client
	log *logrus.Entry
}

func NewFavoritesAdapter(log *logrus.Entry, api *upstream.Client) *favoritesAdapter {
	return &favoritesAdapter{
		api: api,
		log: log,
	}
}

func (a *favoritesAdapter) GetFavoris(userID int64) ([]catalog.Parfum, error) {
	var parfums []catalog.Parfum
	if _, err := a.api.Get(fmt.Sprintf("/favoris/%d", userID), nil, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}

func (a *favoritesAdapter) AddFavori(userID, parfumID int64) error {
	body := struct {
		UserID   int64 `json:"user_id"`
		ParfumID int64 `json:"parfum_id"`
	}{
		UserID:   userID,
		ParfumID: parfumID,
	}

	var result upstream.MutationResult
	_, err := a.api.Post("/favoris", body, &result)
	return err
}

func (a *favoritesAdapter) RemoveFavori(userID, parfumID int64) error {
	_, err := a.api.Delete(fmt.Sprintf("/favoris/%d/%d", userID, parfumID), nil)
	return err
}

func (a *favoritesAdapter) IsFavori(userID, parfumID int64) (bool, error) {
	var result struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if _, err := a.api.Get(fmt.Sprintf("/favoris/%d/%d", userID, parfumID), nil, &result); err != nil {
		return false, err
	}
	return result.IsFavorite, nil
}

func (a *favoritesAdapter) GetWishlist(userID int64) ([]WishlistEntry, error) {
	var entries []WishlistEntry
	if _, err := a.api.Get(fmt.Sprintf("/wishlist/%d", userID), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type addWishlistRequest struct {
	UserID           int64  `json:"user_id"`
	ParfumID         int64  `json:"parfum_id"`
	NotePersonnelle  string `json:"note_personnelle"`
	Priorite         string `json:"priorite"`
}

func (a *favoritesAdapter) AddToWishlist(userID, parfumID int64, notePersonnelle, priorite string) error {
	body := addWishlistRequest{
		UserID:          userID,
		ParfumID:        parfumID,
		NotePersonnelle: notePersonnelle,
		Priorite:        priorite,
	}

	var result upstream.MutationResult
	_, err := a.api.Post("/wishlist", body, &result)
	return err
}

func (a *favoritesAdapter) RemoveFromWishlist(userID, parfumID int64) error {
	_, err := a.api.Delete(fmt.Sprintf("/wishlist/%d/%d", userID, parfumID), nil)
	return err
}

func (a *favoritesAdapter) IsInWishlist(userID, parfumID int64) (bool, error) {
	var result struct {
		InWishlist bool `json:"inWishlist"`
	}
	if _, err := a.api.Get(fmt.Sprintf("/wishlist/%d/%d", userID, parfumID), nil, &result); err != nil {
		return false, err
	}
	return result.InWishlist, nil
}
