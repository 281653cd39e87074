// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings is a small typed key/value store for client preferences,
// persisted in a bbolt file. Values are JSON encoded, so any serializable
// type can be stored under a [Key].
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

// Key names one setting.
type Key string

const (
	KeyDefaultCredentialsType           Key = "defaultCredentialsType"
	KeyDefaultAccountID                 Key = "defaultAccountID"
	KeyDefaultUsername                  Key = "defaultUsername"
	KeyDefaultSiteAddress               Key = "defaultSiteAddress"
	KeyDefaultStoreID                   Key = "defaultStoreID"
	KeyDefaultStoreName                 Key = "defaultStoreName"
	KeyDefaultStoreCurrencySettings     Key = "defaultStoreCurrencySettings"
	KeyDefaultAnonymousID               Key = "defaultAnonymousID"
	KeyDefaultRoles                     Key = "defaultRoles"
	KeyDeviceID                         Key = "deviceID"
	KeyDeviceToken                      Key = "deviceToken"
	KeyErrorLoginSiteAddress            Key = "errorLoginSiteAddress"
	KeyHasFinishedOnboarding            Key = "hasFinishedOnboarding"
	KeyUserOptedInAnalytics             Key = "userOptedInAnalytics"
	KeyUserOptedInCrashLogging          Key = "userOptedInCrashlytics"
	KeyVersionOfLastRun                 Key = "versionOfLastRun"
	KeyAnalyticsUsername                Key = "analyticsUsername"
	KeyNotificationsLastSeenTime        Key = "notificationsLastSeenTime"
	KeyNotificationsMarkAsReadCount     Key = "notificationsMarkAsReadCount"
	KeyCompletedAllStoreOnboardingTasks Key = "completedAllStoreOnboardingTasks"
)

var bucketSettings = []byte("settings")

// ErrClosed is returned by every call on a closed [Store].
var ErrClosed = errors.New("settings store is closed")

// Store is a bbolt-backed settings store. Reads and writes may run
// concurrently; Close must not.
type Store struct {
	db     *bolt.DB
	logger *logger.Logger
}

// Open opens (or creates) the settings file at path.
func Open(path string, log *logger.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create settings dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSettings)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create settings bucket: %w", err)
	}

	log.Debug().Str("func", "settings.Open").Str("path", path).Msg("settings store opened")

	return &Store{db: db, logger: log}, nil
}

// Close closes the underlying file.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Set stores value under key. A nil value removes the key.
func (s *Store) Set(key Key, value any) error {
	if value == nil {
		return s.Remove(key)
	}
	if s.db == nil {
		return ErrClosed
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %q: %w", key, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSettings).Put([]byte(key), data)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "Store.Set").Str("key", string(key)).Msg("failed to write setting")
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	return nil
}

// Load decodes the value stored under key into dest. It reports false and
// leaves dest untouched when the key is missing.
func (s *Store) Load(key Key, dest any) (bool, error) {
	if s.db == nil {
		return false, ErrClosed
	}

	var data []byte
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSettings).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode setting %q: %w", key, err)
	}
	return true, nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(key Key) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSettings).Delete([]byte(key))
	})
}

// Contains reports whether a value is stored under key.
func (s *Store) Contains(key Key) bool {
	if s.db == nil {
		return false
	}
	var found bool
	_ = s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(bucketSettings).Get([]byte(key)) != nil
		return nil
	})
	return found
}

// Get is the typed form of [Store.Load].
func Get[T any](s *Store, key Key) (T, bool, error) {
	var v T
	ok, err := s.Load(key, &v)
	return v, ok, err
}
