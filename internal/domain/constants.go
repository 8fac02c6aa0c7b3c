package domain

// Default configuration values
const (
	// DefaultCapacityPerSlot максимальное количество бронирований на один слот
	DefaultCapacityPerSlot = 10
)

// Business validation constants
const (
	MinPatientsPerAppointment = 1
	MaxPatientsPerAppointment = 5
	MinPatientAge             = 0
	MaxPatientAge             = 18 // детская клиника
	MaxParentNameLength       = 100
	MaxPatientNameLength      = 100
	MaxAddressLength          = 500
	MaxDiseaseLength          = 200
	MaxMedicineLength         = 1000
	MaxNotesLength            = 500
	MinPhoneDigits            = 7
	MaxPhoneDigits            = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
