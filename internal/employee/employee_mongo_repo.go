package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "employees"

type employeeDocument struct {
	ID         string    `bson:"_id"`
	EmployeeID string    `bson:"employee_id"`
	FullName   string    `bson:"full_name"`
	Email      string    `bson:"email"`
	Department string    `bson:"department"`
	CreatedAt  time.Time `bson:"created_at"`
}

func toDocument(e *Employee) employeeDocument {
	return employeeDocument{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
	}
}

func (d employeeDocument) toEntity() Employee {
	id, _ := uuid.Parse(d.ID)
	return Employee{
		ID:         id,
		EmployeeID: d.EmployeeID,
		FullName:   d.FullName,
		Email:      d.Email,
		Department: d.Department,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository declares the unique indexes before returning, so a
// repository never runs against a collection missing its constraints.
func NewMongoRepository(ctx context.Context, db *mongo.Database) (Repository, error) {
	coll := db.Collection(CollectionName)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetName(ConstraintEmployeeID).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(ConstraintEmail).SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return nil, err
	}
	return &mongoRepository{coll: coll}, nil
}

func (r *mongoRepository) Create(ctx context.Context, empl *Employee) error {
	_, err := r.coll.InsertOne(ctx, toDocument(empl))
	return err
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]Employee, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []employeeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	empls := make([]Employee, len(docs))
	for i, d := range docs {
		empls[i] = d.toEntity()
	}
	return empls, nil
}

func (r *mongoRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var doc employeeDocument
	if err := r.coll.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&doc); err != nil {
		return nil, err
	}
	empl := doc.toEntity()
	return &empl, nil
}

func (r *mongoRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"employee_id": employeeID}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *mongoRepository) ExistsByEmail(ctx context.Context, email, excludeEmployeeID string) (bool, error) {
	filter := bson.M{"email": email}
	if excludeEmployeeID != "" {
		filter["employee_id"] = bson.M{"$ne": excludeEmployeeID}
	}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *mongoRepository) UpdateByEmployeeID(ctx context.Context, employeeID string, empl *Employee) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"employee_id": employeeID},
		bson.M{"$set": bson.M{
			"employee_id": empl.EmployeeID,
			"full_name":   empl.FullName,
			"email":       empl.Email,
			"department":  empl.Department,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
