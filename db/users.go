package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go-surgesense/types"
)

// HashString hashes a given string using SHA-256 and returns its hex
// representation. Used as a stable Firestore document ID.
func HashString(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// FindUser looks up a user by credentials. A missing user is returned
// as (nil, nil), not an error.
func (s *Store) FindUser(ctx context.Context, email, password string) (*types.User, error) {
	if s.client == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		for i := range s.users {
			if s.users[i].Email == email && s.users[i].Password == password {
				u := s.users[i]
				return &u, nil
			}
		}
		return nil, nil
	}

	docs, err := s.client.Collection("users").
		Where("email", "==", email).
		Where("password", "==", password).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var u types.User
	if err := docs[0].DataTo(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser registers a new citizen account. Duplicate emails are
// rejected.
func (s *Store) CreateUser(ctx context.Context, u types.User) error {
	if u.Role == "" {
		u.Role = "citizen"
	}

	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.users {
			if s.users[i].Email == u.Email {
				return fmt.Errorf("user with email %s already exists", u.Email)
			}
		}
		s.users = append(s.users, u)
		return nil
	}

	docs, err := s.client.Collection("users").
		Where("email", "==", u.Email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return err
	}
	if len(docs) > 0 {
		return fmt.Errorf("user with email %s already exists", u.Email)
	}

	_, err = s.client.Collection("users").Doc(HashString(u.Email)).Set(ctx, u)
	return err
}
