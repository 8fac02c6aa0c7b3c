package appointment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// MongoRepository репозиторий записей на приём поверх MongoDB
// Основная реализация: оригинальная система хранила записи в документном
// хранилище, коллекция на дату
type MongoRepository struct {
	appointments *mongo.Collection
	slotCounters *mongo.Collection
}

// NewMongoRepository создает репозиторий поверх клиента MongoDB
func NewMongoRepository(client *mongo.Client, dbName string) *MongoRepository {
	db := client.Database(dbName)
	return &MongoRepository{
		appointments: db.Collection(mongoCollectionAppointments),
		slotCounters: db.Collection(mongoCollectionSlotCounters),
	}
}

// appointmentDocument документ записи в коллекции appointments
type appointmentDocument struct {
	ID         string            `bson:"_id"`
	Date       string            `bson:"date"`
	SlotLabel  string            `bson:"slot"`
	ParentName string            `bson:"parent_name"`
	Phone      string            `bson:"phone"`
	Address    string            `bson:"address"`
	Patients   []patientDocument `bson:"patients"`
	Token      int64             `bson:"token"`
	CreatedAt  time.Time         `bson:"created_at"`
}

type patientDocument struct {
	Name string `bson:"name"`
	Age  int    `bson:"age"`
}

// slotCounterDocument документ-счётчик в коллекции slot_counters, один на дату
// Slots хранит занятость по меткам слотов, NextToken порядковый номер очереди
type slotCounterDocument struct {
	Date      string           `bson:"_id"`
	Slots     map[string]int64 `bson:"slots"`
	NextToken int64            `bson:"next_token"`
}

// GetByDate возвращает все записи на указанную дату в порядке создания
func (r *MongoRepository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	filter := bson.M{"date": date.Format(domain.DateFormat)}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.appointments.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - find: %v", ErrExecQuery, err)
	}
	defer cursor.Close(ctx)

	var docs []appointmentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - decode cursor: %v", ErrDecodeDocument, err)
	}

	result := make([]*domain.Appointment, 0, len(docs))
	for _, doc := range docs {
		appt, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDate - convert document: %v", ErrDecodeDocument, err)
		}
		result = append(result, appt)
	}

	return result, nil
}

// ReserveSlot атомарно резервирует место в слоте и выдаёт номер очереди
//
// Одна операция FindOneAndUpdate с условием "счётчик слота меньше capacity"
// инкрементирует счётчик слота и next_token. Две конкурентные попытки занять
// последнее место получат ровно один успех: для проигравшей фильтр не
// совпадает, upsert упирается в duplicate key по _id и возвращается ErrSlotFull
func (r *MongoRepository) ReserveSlot(ctx context.Context, date time.Time, slotLabel string, capacity int) (int64, error) {
	dateKey := date.Format(domain.DateFormat)
	// Метки слотов не содержат '.' и '$', поэтому пригодны как имена полей
	slotField := "slots." + slotLabel

	filter := bson.M{
		"_id": dateKey,
		"$or": bson.A{
			bson.M{slotField: bson.M{"$exists": false}},
			bson.M{slotField: bson.M{"$lt": capacity}},
		},
	}
	update := bson.M{
		"$inc": bson.M{
			slotField:    1,
			"next_token": 1,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter slotCounterDocument
	err := r.slotCounters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Документ даты существует, но фильтр по счётчику не совпал - слот заполнен
			return 0, ErrSlotFull
		}
		return 0, fmt.Errorf("%w: ReserveSlot - find and update: %v", ErrExecQuery, err)
	}

	return counter.NextToken, nil
}

// ReleaseSlot возвращает место в слоте, занятое ReserveSlot
// Компенсация на случай, когда вставка записи после успешного резервирования
// не удалась; номер очереди при этом не переиспользуется
func (r *MongoRepository) ReleaseSlot(ctx context.Context, date time.Time, slotLabel string) error {
	dateKey := date.Format(domain.DateFormat)
	slotField := "slots." + slotLabel

	filter := bson.M{"_id": dateKey, slotField: bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{slotField: -1}}

	if _, err := r.slotCounters.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("%w: ReleaseSlot - update: %v", ErrExecQuery, err)
	}
	return nil
}

// Create сохраняет новую запись
func (r *MongoRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.CreatedAt = time.Now().UTC()

	doc := appointmentDocument{
		ID:         appt.ID,
		Date:       appt.Date.Format(domain.DateFormat),
		SlotLabel:  appt.SlotLabel,
		ParentName: appt.ParentName,
		Phone:      appt.Phone,
		Address:    appt.Address,
		Patients:   toPatientDocuments(appt.Patients),
		Token:      appt.Token,
		CreatedAt:  appt.CreatedAt,
	}

	if _, err := r.appointments.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: Create - insert: %v", ErrExecQuery, err)
	}

	return appt, nil
}

func (d appointmentDocument) toDomain() (*domain.Appointment, error) {
	date, err := time.Parse(domain.DateFormat, d.Date)
	if err != nil {
		return nil, err
	}

	patients := make([]domain.Patient, len(d.Patients))
	for i, p := range d.Patients {
		patients[i] = domain.Patient{Name: p.Name, Age: p.Age}
	}

	return &domain.Appointment{
		ID:         d.ID,
		Date:       date,
		SlotLabel:  d.SlotLabel,
		ParentName: d.ParentName,
		Phone:      d.Phone,
		Address:    d.Address,
		Patients:   patients,
		Token:      d.Token,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func toPatientDocuments(patients []domain.Patient) []patientDocument {
	docs := make([]patientDocument, len(patients))
	for i, p := range patients {
		docs[i] = patientDocument{Name: p.Name, Age: p.Age}
	}
	return docs
}
