package appointment

import "github.com/sirisampada/SSCC-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для Postgres-реализации
// Mongo-реализация работает напрямую с *mongo.Client
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// Имена коллекций MongoDB
const (
	mongoCollectionAppointments = "appointments"
	mongoCollectionSlotCounters = "slot_counters"
)

// Имена таблиц PostgreSQL
const (
	pgTableAppointments = "appointments"
	pgTableSlotTokens   = "slot_tokens"
)
