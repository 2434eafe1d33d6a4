package db

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"

	"go-surgesense/types"
)

// firestoreClient is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
	initErr    error
)

// InitFirestore initializes and returns a Firestore client. Unlike the
// rest of the GCP clients this one is allowed to fail softly: the store
// falls back to seeded in-memory data when it does.
func InitFirestore() (*firestore.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		if encodedCreds == "" {
			initErr = fmt.Errorf("FIREBASE_CREDENTIALS environment variable not set")
			return
		}

		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			initErr = fmt.Errorf("failed to decode Firestore credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			initErr = fmt.Errorf("error initializing Firebase app: %w", err)
			return
		}

		client, initErr = app.Firestore(context.Background())
	})
	return client, initErr
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}

// Seed data used to populate an empty Firestore project and to serve
// requests when Firestore is unavailable.
var seedUsers = []types.User{
	{Email: "citizen@test.com", Password: "1234", Role: "citizen"},
	{Email: "hospital@test.com", Password: "9999", Role: "hospital"},
}

var seedStaff = []types.Staff{
	{Name: "Dr. Pooja Lingayat", Role: types.RoleDoctor, Department: "Emergency", Status: types.OnDuty, Shift: "day"},
	{Name: "Dr. Khushi Bhatt", Role: types.RoleDoctor, Department: "Surgery", Status: types.OnDuty, Shift: "day"},
	{Name: "Nurse Niru Patel", Role: types.RoleNurse, Department: "ICU", Status: types.OnDuty, Shift: "day"},
	{Name: "Dr. Hriday Desai", Role: types.RoleSpecialist, Department: "Cardiology", Status: types.OffDuty, Shift: "night"},
	{Name: "Nurse Lalita", Role: types.RoleNurse, Department: "ICU", Status: types.OffDuty, Shift: "night"},
}

var seedInventory = []types.InventoryItem{
	{Name: "N95 Masks", AvailableQuantity: 500, RecommendedQuantity: 750, Status: types.DecisionPending, Category: "PPE", Unit: "pieces"},
	{Name: "Inhalers", AvailableQuantity: 45, RecommendedQuantity: 80, Status: types.DecisionPending, Category: "Medicine", Unit: "units"},
	{Name: "Paracetamol", AvailableQuantity: 200, RecommendedQuantity: 300, Status: types.DecisionPending, Category: "Medicine", Unit: "tablets"},
	{Name: "IV Fluids", AvailableQuantity: 120, RecommendedQuantity: 150, Status: types.DecisionPending, Category: "Medical Supplies", Unit: "bags"},
	{Name: "Oxygen Cylinders", AvailableQuantity: 25, RecommendedQuantity: 40, Status: types.DecisionPending, Category: "Equipment", Unit: "cylinders"},
}

// Store is the document store for hospital data. With a nil Firestore
// client it serves the seeded in-memory data instead.
type Store struct {
	client *firestore.Client

	mu        sync.RWMutex
	users     []types.User
	staff     []types.Staff
	inventory []types.InventoryItem
	decisions []types.DecisionLog
	settings  types.HospitalSettings
}

// NewStore builds a store over the given Firestore client (nil for
// memory-only mode). An empty Firestore project gets seeded.
func NewStore(client *firestore.Client) *Store {
	s := &Store{
		client:    client,
		users:     append([]types.User(nil), seedUsers...),
		staff:     append([]types.Staff(nil), seedStaff...),
		inventory: append([]types.InventoryItem(nil), seedInventory...),
		settings:  types.DefaultSettings(),
	}

	if client == nil {
		log.Println("Firestore unavailable, using in-memory fallback store")
		return s
	}

	if err := s.seedFirestore(); err != nil {
		log.Printf("Failed to seed Firestore: %v", err)
	}
	return s
}

// UsingFirestore reports whether the store is backed by Firestore.
func (s *Store) UsingFirestore() bool {
	return s.client != nil
}

// seedFirestore inserts the seed documents into any empty collection.
func (s *Store) seedFirestore() error {
	ctx := context.Background()

	userDocs, err := s.client.Collection("users").Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return err
	}
	if len(userDocs) == 0 {
		for _, u := range seedUsers {
			if _, _, err := s.client.Collection("users").Add(ctx, u); err != nil {
				return err
			}
		}
		log.Println("Users seeded to Firestore")
	}

	staffDocs, err := s.client.Collection("staff").Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return err
	}
	if len(staffDocs) == 0 {
		for _, st := range seedStaff {
			if _, _, err := s.client.Collection("staff").Add(ctx, st); err != nil {
				return err
			}
		}
		log.Println("Staff seeded to Firestore")
	}

	invDocs, err := s.client.Collection("inventory").Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return err
	}
	if len(invDocs) == 0 {
		for _, item := range seedInventory {
			if _, _, err := s.client.Collection("inventory").Add(ctx, item); err != nil {
				return err
			}
		}
		log.Println("Inventory seeded to Firestore")
	}

	return nil
}
