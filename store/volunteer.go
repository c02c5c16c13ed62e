package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/schema"
)

// Volunteer - volunteer registrations and their reward ledger
type Volunteer interface {
	CreateVolunteer(volunteer *schema.Volunteer) (*schema.Volunteer, error)
	ListVolunteers() ([]schema.Volunteer, error)
	AddVolunteerStars(id primitive.ObjectID, delta int) (*schema.Volunteer, error)
	AddVolunteerReward(id primitive.ObjectID, label string) (*schema.Volunteer, error)
}

func (m *mongoDB) CreateVolunteer(volunteer *schema.Volunteer) (*schema.Volunteer, error) {
	if err := lifecycle.NewVolunteer(volunteer, m.now()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.VolunteerCollection).InsertOne(ctx, volunteer)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, lifecycle.ErrDuplicateEmail
		}
		return nil, err
	}
	volunteer.ID = result.InsertedID.(primitive.ObjectID)

	return volunteer, nil
}

func (m *mongoDB) ListVolunteers() ([]schema.Volunteer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.VolunteerCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	volunteers := make([]schema.Volunteer, 0)
	if err := decodeAll(ctx, cursor, &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

// AddVolunteerStars adds delta, which may be negative, to the star count
func (m *mongoDB) AddVolunteerStars(id primitive.ObjectID, delta int) (*schema.Volunteer, error) {
	return m.updateLedger(id, bson.M{"$inc": bson.M{"stars": delta}})
}

// AddVolunteerReward appends label to the rewards list. Repeated labels are
// kept.
func (m *mongoDB) AddVolunteerReward(id primitive.ObjectID, label string) (*schema.Volunteer, error) {
	if err := lifecycle.ValidateReward(label); err != nil {
		return nil, err
	}
	return m.updateLedger(id, bson.M{"$push": bson.M{"rewards": label}})
}

func (m *mongoDB) updateLedger(id primitive.ObjectID, update bson.M) (*schema.Volunteer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var v schema.Volunteer
	if err := m.collection(schema.VolunteerCollection).FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, lifecycle.ErrVolunteerNotFound
		}
		return nil, err
	}
	return &v, nil
}
