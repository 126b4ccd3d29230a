package attendance

import (
	"github.com/raminfosys/erp-backend-go/internal/pkg/validator"
)

// CaptureFailure names the collaborator that could not deliver.
type CaptureFailure string

const (
	CaptureFailureNone     CaptureFailure = ""
	CaptureFailureCamera   CaptureFailure = "CAMERA"
	CaptureFailureLocation CaptureFailure = "LOCATION"
)

// CheckInRequest is the outcome of the camera + geolocation capture flow:
// either an image with coordinates, or a failure.
type CheckInRequest struct {
	UserID      string         `json:"userId"`
	FaceCapture string         `json:"faceCapture"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Failure     CaptureFailure `json:"failure,omitempty"`
}

// Err maps a reported capture failure to its domain error.
func (r *CheckInRequest) Err() error {
	switch r.Failure {
	case CaptureFailureCamera:
		return ErrCameraUnavailable
	case CaptureFailureLocation:
		return ErrLocationUnavailable
	}
	return nil
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if !validator.IsInSlice(string(r.Failure), []string{"", string(CaptureFailureCamera), string(CaptureFailureLocation)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "failure",
			Message: "failure must be one of: CAMERA, LOCATION",
		})
	}

	// A failed capture carries no payload to check
	if r.Failure == CaptureFailureNone {
		if r.Latitude < -90 || r.Latitude > 90 {
			errs = append(errs, validator.ValidationError{
				Field:   "latitude",
				Message: "latitude must be between -90 and 90",
			})
		}

		if r.Longitude < -180 || r.Longitude > 180 {
			errs = append(errs, validator.ValidationError{
				Field:   "longitude",
				Message: "longitude must be between -180 and 180",
			})
		}

		if validator.IsEmpty(r.FaceCapture) {
			errs = append(errs, validator.ValidationError{
				Field:   "faceCapture",
				Message: "face capture is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewAttendanceRequest struct {
	Status Status `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

func (r *ReviewAttendanceRequest) Validate() error {
	return validator.Struct(r)
}
