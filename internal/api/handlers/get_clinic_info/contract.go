package get_clinic_info

import (
	"github.com/sirisampada/SSCC-BookingService/internal/service/clinicinfo"
)

type ClinicInfoService interface {
	Get(lang string) (*clinicinfo.Info, error)
	Languages() []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
