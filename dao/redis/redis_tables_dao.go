package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hotel-forecast/db"
	"hotel-forecast/logger"
	"hotel-forecast/models"
)

// TABLES_KEY_FORMAT caches one parsed pair of input tables per content fingerprint.
const TABLES_KEY_FORMAT = "tables_v1:%s"

var log = logger.New("RedisTablesDAO")

// RedisTablesDAO stores loaded tables in a RedisClient.
type RedisTablesDAO struct {
	client db.RedisClient
}

// NewRedisTablesDAO initializes a RedisTablesDAO with the Redis client.
func NewRedisTablesDAO(client db.RedisClient) *RedisTablesDAO {
	return &RedisTablesDAO{client: client}
}

// SetTables caches the tables under their fingerprint.
func (dao *RedisTablesDAO) SetTables(t *models.Tables) error {
	if t.Fingerprint == "" {
		return fmt.Errorf("refusing to cache tables without a fingerprint")
	}
	key := fmt.Sprintf(TABLES_KEY_FORMAT, t.Fingerprint)
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal tables %s: %w", t.Fingerprint, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set tables in redis: %w", err)
	}
	return nil
}

// GetTables returns the cached tables for a fingerprint, or nil on a cache miss.
func (dao *RedisTablesDAO) GetTables(fingerprint string) (*models.Tables, error) {
	key := fmt.Sprintf(TABLES_KEY_FORMAT, fingerprint)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tables from redis: %w", err)
	}
	var t models.Tables
	if err := json.Unmarshal([]byte(str), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tables JSON: %w", err)
	}
	return &t, nil
}

// ListFingerprints returns the fingerprints of every cached table pair.
func (dao *RedisTablesDAO) ListFingerprints() ([]string, error) {
	keys, err := dao.client.Keys(fmt.Sprintf(TABLES_KEY_FORMAT, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list table keys: %w", err)
	}
	prefix := fmt.Sprintf(TABLES_KEY_FORMAT, "")
	fingerprints := make([]string, 0, len(keys))
	for _, k := range keys {
		fingerprints = append(fingerprints, strings.TrimPrefix(k, prefix))
	}
	return fingerprints, nil
}

// DeleteTables removes one cached table pair.
func (dao *RedisTablesDAO) DeleteTables(fingerprint string) error {
	key := fmt.Sprintf(TABLES_KEY_FORMAT, fingerprint)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete tables key %s: %w", key, err)
	}
	log.Debugf("Deleted cached tables %s", fingerprint)
	return nil
}

// DeleteAllTables removes every cached table pair and reports how many were removed.
func (dao *RedisTablesDAO) DeleteAllTables() (int, error) {
	fingerprints, err := dao.ListFingerprints()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, fp := range fingerprints {
		if err := dao.DeleteTables(fp); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
