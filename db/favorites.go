package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/crate-fm/crate/models"
)

const favoritesKey = "favorites"

// LoadFavorites restores the full favorites list. A missing row means the
// user has never saved anything and yields an empty list.
func (db *DB) LoadFavorites() ([]models.FavoriteTrack, error) {
	var value string

	err := db.QueryRow(`SELECT value FROM kv WHERE key = ?`, favoritesKey).Scan(&value)
	if err == sql.ErrNoRows {
		return []models.FavoriteTrack{}, nil
	}
	if err != nil {
		return nil, err
	}

	var favorites []models.FavoriteTrack
	if err := json.Unmarshal([]byte(value), &favorites); err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.FavoriteTrack{}
	}

	return favorites, nil
}

// SaveFavorites writes the full favorites list under the fixed key,
// replacing whatever was stored before.
func (db *DB) SaveFavorites(favorites []models.FavoriteTrack) error {
	value, err := json.Marshal(favorites)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		favoritesKey, string(value), time.Now())

	return err
}
