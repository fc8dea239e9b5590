package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/crm/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	customersCollection    = "customers"
	interactionsCollection = "interactions"
	followupsCollection    = "followups"
)

type mongoCustomerRepository struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepository builds new mongo CustomerRepository
func NewMongoCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{coll: db.Collection(customersCollection)}
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepository) FindAllByUserID(ctx context.Context, userID string) ([]*model.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	customers := make([]*model.Customer, 0)
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return err
	}
	return nil
}

func (r *mongoCustomerRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}}); err != nil {
		return err
	}
	return nil
}

type mongoInteractionRepository struct {
	coll *mongo.Collection
}

// NewMongoInteractionRepository builds new mongo InteractionRepository
func NewMongoInteractionRepository(db *mongo.Database) InteractionRepository {
	return &mongoInteractionRepository{coll: db.Collection(interactionsCollection)}
}

func (r *mongoInteractionRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*model.Interaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, err
	}

	interactions := make([]*model.Interaction, 0)
	if err := cur.All(ctx, &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *mongoInteractionRepository) Create(ctx context.Context, i *model.Interaction) error {
	if _, err := r.coll.InsertOne(ctx, i); err != nil {
		return err
	}
	return nil
}

type mongoFollowupRepository struct {
	coll      *mongo.Collection
	customers *mongo.Collection
}

// NewMongoFollowupRepository builds new mongo FollowupRepository
func NewMongoFollowupRepository(db *mongo.Database) FollowupRepository {
	return &mongoFollowupRepository{
		coll:      db.Collection(followupsCollection),
		customers: db.Collection(customersCollection),
	}
}

func (r *mongoFollowupRepository) FindByID(ctx context.Context, id string) (*model.Followup, error) {
	var f model.Followup
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *mongoFollowupRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*model.Followup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "followupDate", Value: 1}, {Key: "createdAt", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, err
	}

	followups := make([]*model.Followup, 0)
	if err := cur.All(ctx, &followups); err != nil {
		return nil, err
	}
	return followups, nil
}

// userCustomerNames maps ids of user customers to their names
func (r *mongoFollowupRepository) userCustomerNames(ctx context.Context, userID string) (map[string]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "name": 1})

	cur, err := r.customers.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	var customers []model.Customer
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (r *mongoFollowupRepository) openFilter(names map[string]string) bson.M {
	ids := make([]string, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	return bson.M{"customerId": bson.M{"$in": ids}, "completed": false}
}

func (r *mongoFollowupRepository) FindOpenByUserID(ctx context.Context, userID string, on string) ([]*model.CustomerFollowup, error) {
	names, err := r.userCustomerNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter := r.openFilter(names)
	if on != "" {
		filter["followupDate"] = on
	}

	opts := options.Find().SetSort(bson.D{{Key: "followupDate", Value: 1}, {Key: "createdAt", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var followups []model.Followup
	if err := cur.All(ctx, &followups); err != nil {
		return nil, err
	}

	res := make([]*model.CustomerFollowup, 0, len(followups))
	for _, f := range followups {
		res = append(res, &model.CustomerFollowup{Followup: f, CustomerName: names[f.CustomerID]})
	}
	return res, nil
}

func (r *mongoFollowupRepository) CountOpenByUserID(ctx context.Context, userID string) (int, error) {
	names, err := r.userCustomerNames(ctx, userID)
	if err != nil {
		return 0, err
	}

	count, err := r.coll.CountDocuments(ctx, r.openFilter(names))
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *mongoFollowupRepository) Create(ctx context.Context, f *model.Followup) error {
	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return err
	}
	return nil
}

func (r *mongoFollowupRepository) Complete(ctx context.Context, id string) error {
	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"completed": true}}); err != nil {
		return err
	}
	return nil
}
