package db

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-surgesense/types"
)

const settingsDocID = "hospital"

// ListStaff returns every staff document.
func (s *Store) ListStaff(ctx context.Context) ([]types.Staff, error) {
	if s.client == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return append([]types.Staff(nil), s.staff...), nil
	}

	var staff []types.Staff
	iter := s.client.Collection("staff").Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var st types.Staff
		if err := doc.DataTo(&st); err != nil {
			return nil, err
		}
		staff = append(staff, st)
	}
	return staff, nil
}

// AddStaff inserts a staff document.
func (s *Store) AddStaff(ctx context.Context, st types.Staff) error {
	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.staff = append(s.staff, st)
		return nil
	}
	_, _, err := s.client.Collection("staff").Add(ctx, st)
	return err
}

// ListInventory returns every inventory document.
func (s *Store) ListInventory(ctx context.Context) ([]types.InventoryItem, error) {
	if s.client == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return append([]types.InventoryItem(nil), s.inventory...), nil
	}

	var items []types.InventoryItem
	iter := s.client.Collection("inventory").Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var item types.InventoryItem
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// UpsertInventory writes an inventory item keyed by its name.
func (s *Store) UpsertInventory(ctx context.Context, item types.InventoryItem) error {
	item.LastUpdated = time.Now()

	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.inventory {
			if s.inventory[i].Name == item.Name {
				s.inventory[i] = item
				return nil
			}
		}
		s.inventory = append(s.inventory, item)
		return nil
	}

	_, err := s.client.Collection("inventory").Doc(HashString(item.Name)).Set(ctx, item, firestore.MergeAll)
	return err
}

// LogDecision records an operator decision and returns its ID.
func (s *Store) LogDecision(ctx context.Context, d types.DecisionLog) (string, error) {
	d.ID = uuid.NewString()
	d.Timestamp = time.Now()

	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.decisions = append(s.decisions, d)
		return d.ID, nil
	}

	_, err := s.client.Collection("decisionLog").Doc(d.ID).Set(ctx, d)
	return d.ID, err
}

// ListDecisions returns the decision log.
func (s *Store) ListDecisions(ctx context.Context) ([]types.DecisionLog, error) {
	if s.client == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return append([]types.DecisionLog(nil), s.decisions...), nil
	}

	var decisions []types.DecisionLog
	iter := s.client.Collection("decisionLog").Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d types.DecisionLog
		if err := doc.DataTo(&d); err != nil {
			return nil, err
		}
		d.ID = doc.Ref.ID
		decisions = append(decisions, d)
	}
	return decisions, nil
}

// GetSettings returns the hospital settings, defaulting when no
// document exists yet.
func (s *Store) GetSettings(ctx context.Context) (types.HospitalSettings, error) {
	if s.client == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.settings, nil
	}

	doc, err := s.client.Collection("settings").Doc(settingsDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.DefaultSettings(), nil
		}
		return types.HospitalSettings{}, err
	}

	var settings types.HospitalSettings
	if err := doc.DataTo(&settings); err != nil {
		return types.HospitalSettings{}, err
	}
	return settings, nil
}

// SaveSettings stores the hospital settings document.
func (s *Store) SaveSettings(ctx context.Context, settings types.HospitalSettings) error {
	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.settings = settings
		return nil
	}

	_, err := s.client.Collection("settings").Doc(settingsDocID).Set(ctx, settings)
	return err
}
