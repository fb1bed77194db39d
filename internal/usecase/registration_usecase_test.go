package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	mock_interfaces "github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRegistrationUseCase_ExtractRegistration(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(1767225600123) }

	t.Run("nissan terrano", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uploads := mock_interfaces.NewMockIUploadStore(ctrl)
		uc := NewRegistrationUseCase(uploads, clock)

		uploads.EXPECT().Save(gomock.Any(), "RC_Nissan_Terrano.jpg", gomock.Any()).Return("/uploads/1767225600123-RC_Nissan_Terrano.jpg", nil)

		res, err := uc.ExtractRegistration(context.Background(), "RC_Nissan_Terrano.jpg", strings.NewReader("img"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Confidence != 0.89 || res.FilePath != "/uploads/1767225600123-RC_Nissan_Terrano.jpg" {
			t.Fatalf("unexpected result: %+v", res)
		}
		d := res.Extracted
		if d.Make != "Nissan" || d.Model != "Terrano" || d.Variant != "XV D THP 110ps" || d.FuelType != "Diesel" || d.Year != 2018 {
			t.Fatalf("unexpected details: %+v", d)
		}
		if d.RegistrationNumber != "MH12TR0123" || d.ChassisNumber != "MALNISSANTERR600123" {
			t.Fatalf("unexpected numbers: %+v", d)
		}
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uploads := mock_interfaces.NewMockIUploadStore(ctrl)
		uc := NewRegistrationUseCase(uploads, clock)

		uploads.EXPECT().Save(gomock.Any(), "scan.pdf", gomock.Any()).Return("/uploads/x-scan.pdf", nil)

		res, err := uc.ExtractRegistration(context.Background(), "scan.pdf", strings.NewReader("pdf"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d := res.Extracted
		if d.Make != "Unknown" || d.Year != 2019 || d.RegistrationNumber != "MH14RC0123" || d.ChassisNumber != "MA1CHASSIS600123" {
			t.Fatalf("unexpected details: %+v", d)
		}
	})

	t.Run("missing upload", func(t *testing.T) {
		uc := NewRegistrationUseCase(nil, clock)
		if _, err := uc.ExtractRegistration(context.Background(), "a.jpg", nil); !errors.Is(err, ErrMissingUpload) {
			t.Fatalf("expected ErrMissingUpload, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uploads := mock_interfaces.NewMockIUploadStore(ctrl)
		uc := NewRegistrationUseCase(uploads, clock)

		uploads.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		if _, err := uc.ExtractRegistration(context.Background(), "a.jpg", strings.NewReader("x")); err == nil {
			t.Fatalf("expected error")
		}
	})
}
