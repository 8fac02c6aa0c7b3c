package clinicinfo

import "errors"

// ErrUnsupportedLanguage возвращается при запросе языка вне списка поддерживаемых
var ErrUnsupportedLanguage = errors.New("clinicinfo service: unsupported language")

// locationURL общая для всех языков ссылка на карту
const locationURL = "https://www.google.com/maps?q=Siri+Sampada+Child+Care+Clinic,+2nd+Cross+Rd,+Ashok+Nagar,+Mandya,+Karnataka+571401&hl=en"

// infoByLanguage статический контент клиники по языкам
// Контент не хранится в БД: он меняется вместе с кодом
var infoByLanguage = map[string]Info{
	LangEnglish: {
		Language: LangEnglish,
		Name:     "Siri Sampada Child Care Clinic",
		Address:  "2nd Cross Rd, Ashok Nagar, Mandya, Karnataka 571401",
		Phone:    "097428 52267",
		Doctor: Doctor{
			Name: "Dr. Keerthi B. J.",
			Qualifications: []string{
				"M.D. (Pediatrics), Fellow in Neonatology",
				"Neonatologist & Pediatrician",
				"Associate Professor in Pediatrics, District Hospital, Mandya",
			},
		},
		LocationURL: locationURL,
	},
	LangKannada: {
		Language: LangKannada,
		Name:     "ಸಿರಿ ಸಂಪದ ಮಕ್ಕಳ ಆರೈಕೆ ಕ್ಲಿನಿಕ್",
		Address:  "2ನೇ ಕ್ರಾಸ್ ರಸ್ತೆ, ಅಶೋಕ ನಗರ, ಮಂಡ್ಯ, ಕರ್ನಾಟಕ 571401",
		Phone:    "097428 52267",
		Doctor: Doctor{
			Name: "ಡಾ. ಕೀರ್ತಿ ಬಿ. ಜೆ.",
			Qualifications: []string{
				"ಎಂ.ಡಿ. (ಮಕ್ಕಳ ವೈದ್ಯಶಾಸ್ತ್ರ), ನಿಯೋನೇಟಾಲಜಿ ಫೆಲೋ",
				"ನಿಯೋನೇಟಾಲಜಿಸ್ಟ್ ಮತ್ತು ಮಕ್ಕಳ ವೈದ್ಯ",
				"ಮಕ್ಕಳ ವೈದ್ಯಶಾಸ್ತ್ರದ ಸಹ ಪ್ರಾಧ್ಯಾಪಕರು, ಜಿಲ್ಲಾ ಆಸ್ಪತ್ರೆ, ಮಂಡ್ಯ",
			},
		},
		LocationURL: locationURL,
	},
}

// Service сервис статической информации о клинике
type Service struct{}

// NewService создает новый экземпляр сервиса
func NewService() *Service {
	return &Service{}
}

// Get возвращает информацию о клинике на запрошенном языке
// Пустой язык трактуется как английский
func (s *Service) Get(lang string) (*Info, error) {
	if lang == "" {
		lang = LangEnglish
	}

	info, ok := infoByLanguage[lang]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	return &info, nil
}

// Languages возвращает список поддерживаемых языков
func (s *Service) Languages() []string {
	return []string{LangEnglish, LangKannada}
}
