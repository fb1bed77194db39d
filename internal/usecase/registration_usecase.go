package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"
	"github.com/kuntarvishnuprasad41/sparelab-epc/pkg/logger"
)

// registrationConfidence is reported for every extraction.
const registrationConfidence = 0.89

// IRegistrationUseCase reads vehicle details off an uploaded registration
// certificate.
type IRegistrationUseCase interface {
	ExtractRegistration(ctx context.Context, originalName string, content io.Reader) (entities.RegistrationExtraction, error)
}

// RegistrationUseCase is a stand-in reader: it stores the upload and derives
// the details from the file name. Numbers are suffixed from the clock so
// repeated scans do not collide.
type RegistrationUseCase struct {
	uploads interfaces.IUploadStore
	now     func() time.Time
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(uploads interfaces.IUploadStore, clock func() time.Time) *RegistrationUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &RegistrationUseCase{uploads: uploads, now: clock}
}

func (u *RegistrationUseCase) ExtractRegistration(ctx context.Context, originalName string, content io.Reader) (entities.RegistrationExtraction, error) {
	if content == nil {
		return entities.RegistrationExtraction{}, ErrMissingUpload
	}

	path, err := u.uploads.Save(ctx, originalName, content)
	if err != nil {
		return entities.RegistrationExtraction{}, err
	}

	details := extractRegistrationDetails(originalName, u.now())
	log := logger.WithComponent(ctx, "registration")
	log.Info().
		Str("file_path", path).
		Str("registration_number", details.RegistrationNumber).
		Msg("registration certificate read")

	return entities.RegistrationExtraction{
		Confidence: registrationConfidence,
		Extracted:  details,
		FilePath:   path,
	}, nil
}

func extractRegistrationDetails(originalName string, now time.Time) entities.RegistrationDetails {
	millis := fmt.Sprintf("%06d", now.UnixMilli())
	suffix := millis[len(millis)-6:]
	short := suffix[len(suffix)-4:]

	name := strings.ToLower(originalName)
	if strings.Contains(name, "terrano") || strings.Contains(name, "nissan") {
		return entities.RegistrationDetails{
			RegistrationNumber: "MH12TR" + short,
			ChassisNumber:      "MALNISSANTERR" + suffix,
			Make:               "Nissan",
			Model:              "Terrano",
			Variant:            "XV D THP 110ps",
			FuelType:           "Diesel",
			Year:               2018,
		}
	}

	return entities.RegistrationDetails{
		RegistrationNumber: "MH14RC" + short,
		ChassisNumber:      "MA1CHASSIS" + suffix,
		Make:               "Unknown",
		Model:              "Unknown",
		Variant:            "Unknown",
		FuelType:           "Unknown",
		Year:               2019,
	}
}
