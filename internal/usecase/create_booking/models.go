package create_booking

import "time"

// Patient пациент в запросе на запись
type Patient struct {
	Name string
	Age  int
}

// Request модель запроса на создание записи
type Request struct {
	ParentName string    // Имя родителя/опекуна
	Phone      string    // Контактный телефон
	Address    string    // Адрес
	Patients   []Patient // Пациенты (от 1 до 5)
	Date       time.Time // Дата записи (без времени)
	SlotLabel  string    // Метка выбранного слота (например, "8:00-8:30 AM")
}

// Response модель ответа с созданной записью
type Response struct {
	ID         string    // ID созданной записи
	Token      int64     // Номер очереди в рамках даты
	Date       time.Time // Дата записи
	SlotLabel  string    // Метка слота
	ParentName string    // Имя родителя
	Phone      string    // Телефон
	Address    string    // Адрес
	Patients   []Patient // Пациенты
	CreatedAt  time.Time // Время создания
}
