package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/schema"
)

const testMongoURI = "mongodb://127.0.0.1:27017/?compressors=disabled"

var (
	testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	donorAlice = lifecycle.Identity{UserID: "alice", Role: lifecycle.RoleDonor, Address: "1 Bakery Lane"}
	donorDave  = lifecycle.Identity{UserID: "dave", Role: lifecycle.RoleDonor, Address: "9 Market St"}
	recipBob   = lifecycle.Identity{UserID: "bob", Role: lifecycle.RoleRecipient, Address: "2 Shelter Rd"}
	recipCarol = lifecycle.Identity{UserID: "carol", Role: lifecycle.RoleRecipient, Address: "3 Food Bank Ave"}
	adminEve   = lifecycle.Identity{UserID: "eve", Role: lifecycle.RoleAdmin}
)

type LifecycleTestSuite struct {
	suite.Suite
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        *mongoDB
}

func NewLifecycleTestSuite(client *mongo.Client, dbName string) *LifecycleTestSuite {
	return &LifecycleTestSuite{
		mongoClient: client,
		testDBName:  dbName,
	}
}

func (s *LifecycleTestSuite) SetupSuite() {
	s.testDatabase = s.mongoClient.Database(s.testDBName)
}

func (s *LifecycleTestSuite) SetupTest() {
	// make sure every test is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexerWithClient(s.mongoClient, s.testDBName).IndexAll()

	s.store = NewMongoStore(s.mongoClient, s.testDBName, false).(*mongoDB)
	s.store.now = func() time.Time { return testNow }
}

func (s *LifecycleTestSuite) TearDownSuite() {
	_ = s.CleanMongoDB()
	_ = s.mongoClient.Disconnect(context.Background())
}

// CleanMongoDB drop the whole test mongodb
func (s *LifecycleTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *LifecycleTestSuite) newDonation(caller lifecycle.Identity, foodName string) *schema.Donation {
	d, err := s.store.CreateDonation(&schema.Donation{
		FoodName:      foodName,
		Quantity:      "10 loaves",
		ExpiryDate:    testNow.Add(48 * time.Hour),
		PickupAddress: caller.Address,
	}, caller)
	s.Require().NoError(err)
	return d
}

func (s *LifecycleTestSuite) countRequests(query bson.M) int64 {
	n, err := s.testDatabase.Collection(schema.RequestCollection).CountDocuments(context.Background(), query)
	s.Require().NoError(err)
	return n
}

func (s *LifecycleTestSuite) TestCreateDonationStampsOwner() {
	d := s.newDonation(donorAlice, "Bread")

	s.False(d.ID.IsZero())
	s.Equal("alice", d.Donor)
	s.Equal(schema.DonationAvailable, d.Status)
	s.Empty(d.Recipient)

	stored, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal("Bread", stored.FoodName)
	s.True(lifecycle.Consistent(*stored))
}

func (s *LifecycleTestSuite) TestCreateDonationMissingFields() {
	_, err := s.store.CreateDonation(&schema.Donation{FoodName: "Soup"}, donorAlice)
	s.Error(err)
	s.True(errors.Is(err, lifecycle.ErrValidation))

	var missing lifecycle.MissingFieldsError
	s.True(errors.As(err, &missing))
	s.Equal([]string{"quantity", "expiryDate", "pickupAddress"}, missing.Fields)
}

func (s *LifecycleTestSuite) TestGetDonationNotFound() {
	_, err := s.store.GetDonation(primitive.NewObjectID())
	s.True(errors.Is(err, lifecycle.ErrNotFound))
}

func (s *LifecycleTestSuite) TestRequestDonationReserves() {
	d := s.newDonation(donorAlice, "Bread")

	req, err := s.store.RequestDonation(d.ID, recipBob)
	s.NoError(err)
	s.False(req.ID.IsZero())
	s.Equal(schema.RequestPending, req.Status)
	s.Equal("bob", req.Recipient)
	s.Equal("Bread", req.FoodType)
	s.Equal(recipBob.Address, req.DeliveryAddress)
	s.Equal(d.ID, *req.Donation)

	stored, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal(schema.DonationReserved, stored.Status)
	s.Equal("bob", stored.Recipient)
	s.True(lifecycle.Consistent(*stored))

	s.Equal(int64(1), s.countRequests(bson.M{"donation": d.ID}))
}

func (s *LifecycleTestSuite) TestSecondRequestConflicts() {
	d := s.newDonation(donorAlice, "Bread")

	_, err := s.store.RequestDonation(d.ID, recipBob)
	s.NoError(err)

	_, err = s.store.RequestDonation(d.ID, recipCarol)
	s.True(errors.Is(err, lifecycle.ErrConflict))
	s.True(errors.Is(err, lifecycle.ErrDonationUnavailable))

	stored, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal(schema.DonationReserved, stored.Status)
	s.Equal("bob", stored.Recipient)
	s.Equal(int64(1), s.countRequests(bson.M{"donation": d.ID}))
}

func (s *LifecycleTestSuite) TestRequestDonationNeedsAddress() {
	d := s.newDonation(donorAlice, "Bread")

	_, err := s.store.RequestDonation(d.ID, lifecycle.Identity{UserID: "nomad", Role: lifecycle.RoleRecipient})
	s.True(errors.Is(err, lifecycle.ErrValidation))

	stored, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal(schema.DonationAvailable, stored.Status)
	s.Equal(int64(0), s.countRequests(bson.M{}))
}

func (s *LifecycleTestSuite) TestApprovalDistributesDonation() {
	d := s.newDonation(donorAlice, "Bread")

	req, err := s.store.RequestDonation(d.ID, recipBob)
	s.Require().NoError(err)

	approved := schema.RequestApproved
	updated, err := s.store.UpdateRequest(req.ID, adminEve, schema.RequestUpdate{Status: &approved})
	s.NoError(err)
	s.Equal(schema.RequestApproved, updated.Status)

	stored, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal(schema.DonationDistributed, stored.Status)
	s.Equal("bob", stored.Recipient)

	// approving again leaves the donation distributed
	_, err = s.store.UpdateRequest(req.ID, adminEve, schema.RequestUpdate{Status: &approved})
	s.NoError(err)
	stored, err = s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal(schema.DonationDistributed, stored.Status)
}

func (s *LifecycleTestSuite) TestFailedDistributionKeepsRequestPending() {
	d := s.newDonation(donorAlice, "Bread")
	req, err := s.store.RequestDonation(d.ID, recipBob)
	s.Require().NoError(err)

	// the reservation is released behind the request's back
	_, err = s.testDatabase.Collection(schema.DonationCollection).UpdateOne(context.Background(),
		bson.M{"_id": d.ID}, releaseUpdate(testNow))
	s.Require().NoError(err)

	s.store.now = func() time.Time { return testNow.Add(time.Minute) }
	approved := schema.RequestApproved
	note := "leave at the back door"
	_, err = s.store.UpdateRequest(req.ID, adminEve, schema.RequestUpdate{Status: &approved, Description: &note})
	s.True(errors.Is(err, lifecycle.ErrNothingToDistribute))

	stored, err := s.store.GetRequest(req.ID, recipBob)
	s.Require().NoError(err)
	s.Equal(schema.RequestPending, stored.Status)
	s.Equal(req.Description, stored.Description)
	s.True(stored.UpdatedAt.Equal(req.UpdatedAt))

	donation, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal(schema.DonationAvailable, donation.Status)
}

func (s *LifecycleTestSuite) TestRecipientCannotChangeStatus() {
	d := s.newDonation(donorAlice, "Bread")
	req, err := s.store.RequestDonation(d.ID, recipBob)
	s.Require().NoError(err)

	approved := schema.RequestApproved
	_, err = s.store.UpdateRequest(req.ID, recipBob, schema.RequestUpdate{Status: &approved})
	s.True(errors.Is(err, lifecycle.ErrForbidden))

	stored, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal(schema.DonationReserved, stored.Status)
}

func (s *LifecycleTestSuite) TestDeleteRequestReleasesDonation() {
	for _, status := range []schema.RequestStatus{schema.RequestPending, schema.RequestApproved} {
		d := s.newDonation(donorAlice, "Bread")
		req, err := s.store.RequestDonation(d.ID, recipBob)
		s.Require().NoError(err)

		if status != schema.RequestPending {
			_, err = s.store.UpdateRequest(req.ID, adminEve, schema.RequestUpdate{Status: &status})
			s.Require().NoError(err)
		}

		s.NoError(s.store.DeleteRequest(req.ID, recipBob))

		stored, err := s.store.GetDonation(d.ID)
		s.NoError(err)
		s.Equal(schema.DonationAvailable, stored.Status, "request status %s", status)
		s.Empty(stored.Recipient)
		s.True(lifecycle.Consistent(*stored))
	}
}

func (s *LifecycleTestSuite) TestDeleteRequestForbidden() {
	d := s.newDonation(donorAlice, "Bread")
	req, err := s.store.RequestDonation(d.ID, recipBob)
	s.Require().NoError(err)

	err = s.store.DeleteRequest(req.ID, recipCarol)
	s.True(errors.Is(err, lifecycle.ErrForbidden))
	s.Equal(int64(1), s.countRequests(bson.M{"_id": req.ID}))
}

func (s *LifecycleTestSuite) TestUpdateDonationOwnership() {
	d := s.newDonation(donorAlice, "Bread")
	name := "Rye Bread"

	_, err := s.store.UpdateDonation(d.ID, donorDave, schema.DonationUpdate{FoodName: &name})
	s.True(errors.Is(err, lifecycle.ErrForbidden))

	stored, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal("Bread", stored.FoodName)

	updated, err := s.store.UpdateDonation(d.ID, donorAlice, schema.DonationUpdate{FoodName: &name})
	s.NoError(err)
	s.Equal("Rye Bread", updated.FoodName)
	s.Equal(schema.DonationAvailable, updated.Status)

	_, err = s.store.UpdateDonation(d.ID, adminEve, schema.DonationUpdate{})
	s.True(errors.Is(err, lifecycle.ErrEmptyUpdate))
}

func (s *LifecycleTestSuite) TestDeleteDonationCascades() {
	d := s.newDonation(donorAlice, "Bread")
	_, err := s.store.RequestDonation(d.ID, recipBob)
	s.Require().NoError(err)

	err = s.store.DeleteDonation(d.ID, donorDave)
	s.True(errors.Is(err, lifecycle.ErrForbidden))

	s.NoError(s.store.DeleteDonation(d.ID, donorAlice))

	_, err = s.store.GetDonation(d.ID)
	s.True(errors.Is(err, lifecycle.ErrDonationNotFound))
	s.Equal(int64(0), s.countRequests(bson.M{"donation": d.ID}))
}

func (s *LifecycleTestSuite) TestRequestDetails() {
	d := s.newDonation(donorAlice, "Bread")
	req, err := s.store.RequestDonation(d.ID, recipBob)
	s.Require().NoError(err)

	_, err = s.store.CreateRequest(&schema.Request{
		FoodType:        "Rice",
		Quantity:        "2 kg",
		PreferredDate:   testNow.Add(24 * time.Hour),
		DeliveryAddress: recipBob.Address,
	}, recipBob)
	s.NoError(err)

	details, err := s.store.ListRequestsByRecipient("bob")
	s.NoError(err)
	s.Len(details, 2)

	detail, err := s.store.GetRequest(req.ID, recipBob)
	s.NoError(err)
	s.Require().NotNil(detail.DonationDetail)
	s.Equal("Bread", detail.DonationDetail.FoodName)

	_, err = s.store.GetRequest(req.ID, recipCarol)
	s.True(errors.Is(err, lifecycle.ErrForbidden))

	_, err = s.store.GetRequest(req.ID, adminEve)
	s.NoError(err)
}

func (s *LifecycleTestSuite) TestListDonationsPages() {
	for i := 0; i < 3; i++ {
		s.newDonation(donorAlice, "Bread")
	}

	donations, total, err := s.store.ListDonations(schema.Page{Number: 1, Limit: 2})
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(donations, 2)

	donations, _, err = s.store.ListDonations(schema.Page{Number: 2, Limit: 2})
	s.NoError(err)
	s.Len(donations, 1)

	available, err := s.store.ListAvailableDonations()
	s.NoError(err)
	s.Len(available, 3)

	mine, err := s.store.ListDonationsByDonor("dave")
	s.NoError(err)
	s.Len(mine, 0)
}

func (s *LifecycleTestSuite) TestReconcileReservations() {
	orphan := schema.Donation{
		FoodName:      "Milk",
		Quantity:      "4 bottles",
		ExpiryDate:    testNow.Add(24 * time.Hour),
		PickupAddress: "1 Bakery Lane",
		Status:        schema.DonationReserved,
		Donor:         "alice",
		Recipient:     "bob",
		CreatedAt:     testNow.Add(-time.Hour),
		UpdatedAt:     testNow.Add(-time.Hour),
	}
	result, err := s.testDatabase.Collection(schema.DonationCollection).InsertOne(context.Background(), orphan)
	s.Require().NoError(err)
	orphanID := result.InsertedID.(primitive.ObjectID)

	// a fresh reservation with its request is left alone
	d := s.newDonation(donorAlice, "Bread")
	_, err = s.store.RequestDonation(d.ID, recipBob)
	s.Require().NoError(err)

	n, err := s.store.ReconcileReservations()
	s.NoError(err)
	s.Equal(int64(1), n)

	released, err := s.store.GetDonation(orphanID)
	s.NoError(err)
	s.Equal(schema.DonationAvailable, released.Status)
	s.Empty(released.Recipient)

	kept, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal(schema.DonationReserved, kept.Status)

	n, err = s.store.ReconcileReservations()
	s.NoError(err)
	s.Equal(int64(0), n)
}

// TestBreadScenario walks a donation from posting to hand over
func (s *LifecycleTestSuite) TestBreadScenario() {
	d := s.newDonation(donorAlice, "Bread")
	s.Equal(schema.DonationAvailable, d.Status)

	req, err := s.store.RequestDonation(d.ID, recipBob)
	s.Require().NoError(err)

	approved := schema.RequestApproved
	_, err = s.store.UpdateRequest(req.ID, adminEve, schema.RequestUpdate{Status: &approved})
	s.Require().NoError(err)

	stored, err := s.store.GetDonation(d.ID)
	s.NoError(err)
	s.Equal(schema.DonationDistributed, stored.Status)
	s.Equal("bob", stored.Recipient)
	s.True(lifecycle.Consistent(*stored))
}

func connectTestMongo(t *testing.T) *mongo.Client {
	client, err := mongo.NewClient(options.Client().ApplyURI(testMongoURI))
	if err != nil {
		t.Fatalf("create mongo client with error: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		t.Skipf("mongo is not available: %s", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo is not available: %s", err)
	}
	return client
}

func TestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, NewLifecycleTestSuite(connectTestMongo(t), "foodshare-test-lifecycle"))
}
