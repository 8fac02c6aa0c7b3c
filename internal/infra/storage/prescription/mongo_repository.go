package prescription

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

const mongoCollectionPrescriptions = "prescriptions"

// MongoRepository репозиторий назначений поверх MongoDB
type MongoRepository struct {
	prescriptions *mongo.Collection
}

// NewMongoRepository создает репозиторий поверх клиента MongoDB
func NewMongoRepository(client *mongo.Client, dbName string) *MongoRepository {
	return &MongoRepository{
		prescriptions: client.Database(dbName).Collection(mongoCollectionPrescriptions),
	}
}

// prescriptionDocument документ назначения в коллекции prescriptions
type prescriptionDocument struct {
	ID          string    `bson:"_id"`
	Date        string    `bson:"date"`
	PatientName string    `bson:"patient_name"`
	PatientAge  int       `bson:"patient_age"`
	Disease     string    `bson:"disease"`
	Medicine    string    `bson:"medicine"`
	Notes       *string   `bson:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}

// Create сохраняет новое назначение
func (r *MongoRepository) Create(ctx context.Context, p *domain.Prescription) (*domain.Prescription, error) {
	p.CreatedAt = time.Now().UTC()

	doc := prescriptionDocument{
		ID:          p.ID,
		Date:        p.Date.Format(domain.DateFormat),
		PatientName: p.PatientName,
		PatientAge:  p.PatientAge,
		Disease:     p.Disease,
		Medicine:    p.Medicine,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}

	if _, err := r.prescriptions.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: Create - insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// GetByDate возвращает назначения за указанную дату в порядке создания
func (r *MongoRepository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Prescription, error) {
	filter := bson.M{"date": date.Format(domain.DateFormat)}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.prescriptions.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - find: %v", ErrExecQuery, err)
	}
	defer cursor.Close(ctx)

	var docs []prescriptionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - decode cursor: %v", ErrDecodeDocument, err)
	}

	result := make([]*domain.Prescription, 0, len(docs))
	for _, doc := range docs {
		date, err := time.Parse(domain.DateFormat, doc.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDate - parse date: %v", ErrDecodeDocument, err)
		}
		result = append(result, &domain.Prescription{
			ID:          doc.ID,
			Date:        date,
			PatientName: doc.PatientName,
			PatientAge:  doc.PatientAge,
			Disease:     doc.Disease,
			Medicine:    doc.Medicine,
			Notes:       doc.Notes,
			CreatedAt:   doc.CreatedAt,
		})
	}

	return result, nil
}
