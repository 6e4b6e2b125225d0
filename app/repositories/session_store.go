package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"blogapi/app/models"
)

// SessionStore keeps sessions in an in-memory badger instance. Entries
// carry the session TTL, so expired tokens vanish on lookup without a
// background sweep, and the store is safe under concurrent handlers.
// Nothing touches disk: restarts drop every session.
type SessionStore struct {
	db  *badger.DB
	ttl time.Duration
}

// NewSessionStore opens the in-memory store with the given session TTL.
func NewSessionStore(ttl time.Duration) (*SessionStore, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	return &SessionStore{db: db, ttl: ttl}, nil
}

// Close releases the store.
func (s *SessionStore) Close() error {
	return s.db.Close()
}

func sessionKey(token string) []byte {
	return []byte("session:" + token)
}

// Put stores the session for the store's TTL.
func (s *SessionStore) Put(session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(sessionKey(session.Token), data).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// Get returns the session for token, or ErrNotFound when the token is
// unknown or its TTL has elapsed.
func (s *SessionStore) Get(token string) (*models.Session, error) {
	var session models.Session
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(token))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})
	if err == ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	return &session, nil
}

// Delete removes the session. Deleting an absent token is not an error.
func (s *SessionStore) Delete(token string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(token))
	})
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
