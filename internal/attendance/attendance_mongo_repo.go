package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "attendance"

type attendanceDocument struct {
	ID         string    `bson:"_id"`
	EmployeeID string    `bson:"employee_id"`
	Date       string    `bson:"date"`
	Status     string    `bson:"status"`
	MarkedAt   time.Time `bson:"marked_at"`
}

func toDocument(a *Attendance) attendanceDocument {
	return attendanceDocument{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     string(a.Status),
		MarkedAt:   a.MarkedAt,
	}
}

func (d attendanceDocument) toEntity() Attendance {
	id, _ := uuid.Parse(d.ID)
	return Attendance{
		ID:         id,
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		Status:     Status(d.Status),
		MarkedAt:   d.MarkedAt.UTC(),
	}
}

func filterDocument(filter Filter) bson.M {
	m := bson.M{}
	if filter.EmployeeID != "" {
		m["employee_id"] = filter.EmployeeID
	}
	if filter.Date != "" {
		m["date"] = filter.Date
	}
	if filter.Status != "" {
		m["status"] = string(filter.Status)
	}
	return m
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(ctx context.Context, db *mongo.Database) (Repository, error) {
	coll := db.Collection(CollectionName)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName(ConstraintEmployeeDate).SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	})
	if err != nil {
		return nil, err
	}
	return &mongoRepository{coll: coll}, nil
}

func (r *mongoRepository) Create(ctx context.Context, a *Attendance) error {
	_, err := r.coll.InsertOne(ctx, toDocument(a))
	return err
}

func (r *mongoRepository) FindAll(ctx context.Context, filter Filter) ([]Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "marked_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filterDocument(filter), opts)
	if err != nil {
		return nil, err
	}
	var docs []attendanceDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	rows := make([]Attendance, len(docs))
	for i, d := range docs {
		rows[i] = d.toEntity()
	}
	return rows, nil
}

func (r *mongoRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID, date string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx,
		bson.M{"employee_id": employeeID, "date": date},
		options.Count().SetLimit(1),
	)
	return n > 0, err
}

func (r *mongoRepository) Count(ctx context.Context, filter Filter) (int64, error) {
	return r.coll.CountDocuments(ctx, filterDocument(filter))
}

func (r *mongoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoRepository) ReassignEmployee(ctx context.Context, fromEmployeeID, toEmployeeID string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"employee_id": fromEmployeeID},
		bson.M{"$set": bson.M{"employee_id": toEmployeeID}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
