package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-surgesense/types"
)

func TestMemoryStoreSeeds(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	assert.False(t, s.UsingFirestore())

	staff, err := s.ListStaff(ctx)
	require.NoError(t, err)
	assert.Len(t, staff, 5)

	inventory, err := s.ListInventory(ctx)
	require.NoError(t, err)
	assert.Len(t, inventory, 5)

	decisions, err := s.ListDecisions(ctx)
	require.NoError(t, err)
	assert.Empty(t, decisions)
}

func TestMemoryStoreAddStaff(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	err := s.AddStaff(ctx, types.Staff{
		Name:       "Dr. Test",
		Role:       types.RoleDoctor,
		Department: "Emergency",
		Status:     types.OnDuty,
		Shift:      "day",
	})
	require.NoError(t, err)

	staff, err := s.ListStaff(ctx)
	require.NoError(t, err)
	assert.Len(t, staff, 6)
	assert.Equal(t, "Dr. Test", staff[5].Name)
}

func TestMemoryStoreUpsertInventory(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	// Updating an existing item replaces it in place.
	err := s.UpsertInventory(ctx, types.InventoryItem{
		Name:              "N95 Masks",
		AvailableQuantity: 900,
		Status:            types.DecisionApproved,
	})
	require.NoError(t, err)

	inventory, err := s.ListInventory(ctx)
	require.NoError(t, err)
	assert.Len(t, inventory, 5)

	var masks *types.InventoryItem
	for i := range inventory {
		if inventory[i].Name == "N95 Masks" {
			masks = &inventory[i]
		}
	}
	require.NotNil(t, masks)
	assert.Equal(t, 900, masks.AvailableQuantity)
	assert.Equal(t, types.DecisionApproved, masks.Status)
	assert.False(t, masks.LastUpdated.IsZero())

	// A new name appends.
	err = s.UpsertInventory(ctx, types.InventoryItem{Name: "Ventilators", AvailableQuantity: 10})
	require.NoError(t, err)
	inventory, err = s.ListInventory(ctx)
	require.NoError(t, err)
	assert.Len(t, inventory, 6)
}

func TestMemoryStoreDecisionLog(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	id, err := s.LogDecision(ctx, types.DecisionLog{
		Type:          "inventory",
		ItemName:      "Inhalers",
		FinalDecision: types.DecisionApproved,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	decisions, err := s.ListDecisions(ctx)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, id, decisions[0].ID)
	assert.False(t, decisions[0].Timestamp.IsZero())
}

func TestMemoryStoreSettings(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultSettings(), settings)

	settings.City = "Delhi"
	settings.Latitude = 28.6139
	settings.Longitude = 77.2090
	require.NoError(t, s.SaveSettings(ctx, settings))

	saved, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Delhi", saved.City)
}

func TestMemoryStoreUsers(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	user, err := s.FindUser(ctx, "citizen@test.com", "1234")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "citizen", user.Role)

	// Wrong password is a nil user, not an error.
	user, err = s.FindUser(ctx, "citizen@test.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	err = s.CreateUser(ctx, types.User{Email: "new@test.com", Password: "pw"})
	require.NoError(t, err)

	user, err = s.FindUser(ctx, "new@test.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "citizen", user.Role)

	err = s.CreateUser(ctx, types.User{Email: "new@test.com", Password: "other"})
	assert.Error(t, err)
}

func TestHashStringStable(t *testing.T) {
	assert.Equal(t, HashString("N95 Masks"), HashString("N95 Masks"))
	assert.NotEqual(t, HashString("N95 Masks"), HashString("Inhalers"))
	assert.Len(t, HashString("anything"), 64)
}
