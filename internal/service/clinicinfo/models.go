package clinicinfo

// Поддерживаемые языки
const (
	LangEnglish = "en"
	LangKannada = "kn"
)

// Info статическая информация о клинике на одном языке
type Info struct {
	Language    string
	Name        string
	Address     string
	Phone       string
	Doctor      Doctor
	LocationURL string
}

// Doctor информация о враче
type Doctor struct {
	Name           string
	Qualifications []string
}
