package get_clinic_info

import (
	"github.com/sirisampada/SSCC-BookingService/internal/service/clinicinfo"
)

// DoctorResponse информация о враче в HTTP ответе
type DoctorResponse struct {
	Name           string   `json:"name"`
	Qualifications []string `json:"qualifications"`
}

// ClinicInfoResponse HTTP модель информации о клинике
type ClinicInfoResponse struct {
	Language    string         `json:"language"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	Phone       string         `json:"phone"`
	Doctor      DoctorResponse `json:"doctor"`
	LocationURL string         `json:"locationUrl"`
}

// FromServiceInfo конвертирует модель сервиса в HTTP response
func FromServiceInfo(info *clinicinfo.Info) *ClinicInfoResponse {
	return &ClinicInfoResponse{
		Language: info.Language,
		Name:     info.Name,
		Address:  info.Address,
		Phone:    info.Phone,
		Doctor: DoctorResponse{
			Name:           info.Doctor.Name,
			Qualifications: info.Doctor.Qualifications,
		},
		LocationURL: info.LocationURL,
	}
}
