package handler

import (
	"errors"
	"net/http"
	"strconv"

	"patient-management-service/internal/service"
	"patient-management-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	msgConnectionFailed = "Database connection failed"
	msgQueryFailed      = "Database query failed"
	msgDelivered        = "Data sent to FMS successfully!"
	msgNotFound         = "Patient not found."
	msgDeliveryFailed   = "Failed to send data to FMS."
	msgUnexpected       = "An unexpected error occurred. Please try again."
)

type PatientHandler struct {
	patientService *service.PatientService
	fmsService     *service.FMSService
}

func NewPatientHandler(patientService *service.PatientService, fmsService *service.FMSService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
		fmsService:     fmsService,
	}
}

// ListPatients renders the patient listing
// GET /
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.patientService.ListPatients(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		utils.PlainError(c, http.StatusInternalServerError, databaseMessage(err))
		return
	}

	c.HTML(http.StatusOK, "patients.html", gin.H{
		"patients": patients,
		"flashes":  utils.PopFlashes(c),
	})
}

// SendToFMS forwards one patient's billing data to the FMS
// POST /send_to_fms/:patient_id
func (h *PatientHandler) SendToFMS(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("patient_id"), 10, 32)
	if err != nil {
		utils.PlainError(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	outcome, err := h.fmsService.Forward(c.Request.Context(), uint(patientID))
	// An unknown patient is an ordinary answer, not a request failure.
	if err != nil && outcome != service.OutcomeNotFound {
		_ = c.Error(err)
	}

	var category, message string
	switch outcome {
	case service.OutcomeDelivered:
		category, message = utils.FlashSuccess, msgDelivered
	case service.OutcomeNotFound:
		category, message = utils.FlashDanger, msgNotFound
	case service.OutcomeDatabaseError:
		utils.PlainError(c, http.StatusInternalServerError, databaseMessage(err))
		return
	case service.OutcomeDeliveryFailed:
		category, message = utils.FlashDanger, msgDeliveryFailed
	default:
		category, message = utils.FlashDanger, msgUnexpected
	}

	if err := utils.AddFlash(c, category, message); err != nil {
		_ = c.Error(err)
	}
	c.Redirect(http.StatusFound, "/")
}

func databaseMessage(err error) string {
	if errors.Is(err, service.ErrConnectionFailed) {
		return msgConnectionFailed
	}
	return msgQueryFailed
}
