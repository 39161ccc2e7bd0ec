package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/apihelpers"
	mw "github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/apihelpers/middlewares"
	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/registration"
	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/utils"
)

func (h *HttpEndpoints) AddRegistrationAPI(rg *gin.RouterGroup) {
	eventsGroup := rg.Group("/events/:eventType")
	{
		eventsGroup.POST("/register", mw.RequirePayload(), h.submitRegistration)
		eventsGroup.GET("/registrations", h.listRegistrations)
	}

	registrationsGroup := rg.Group("/registrations")
	{
		registrationsGroup.GET("/:registrationId", h.getRegistrationStatus)
		registrationsGroup.PUT("/:registrationId/status", mw.RequirePayload(), h.updateRegistrationStatus)
	}
}

func (h *HttpEndpoints) submitRegistration(c *gin.Context) {
	eventType := c.Param("eventType")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		slog.Error("failed to bind registration payload", slog.String("eventType", eventType), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	submission, err := h.registrationService.Register(eventType, fields)
	if err != nil {
		var validationErr *registration.ValidationError
		switch {
		case errors.As(err, &validationErr):
			slog.Debug("registration rejected by validation",
				slog.String("eventType", eventType),
				slog.String("missingFields", strings.Join(validationErr.MissingFields, ",")))
			resp := gin.H{
				"success":     false,
				"message":     validationMessage(validationErr),
				"fieldErrors": validationErr.FieldErrors,
			}
			if len(validationErr.MissingFields) > 0 {
				resp["missingFields"] = validationErr.MissingFields
			}
			c.JSON(http.StatusBadRequest, resp)
		case errors.Is(err, registration.ErrUnknownEventType):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "unknown event type"})
		case errors.Is(err, registration.ErrDuplicateKey):
			slog.Info("duplicate registration attempt", slog.String("eventType", eventType))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "This email address is already registered"})
		default:
			slog.Error("failed to save registration", slog.String("eventType", eventType), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to process registration. Please try again later.",
				"error":   err.Error(),
			})
		}
		return
	}

	slog.Info("registration saved",
		slog.String("eventType", eventType),
		slog.String("registrationId", submission.RegistrationID))
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"data": gin.H{
			"registrationId": submission.RegistrationID,
			"status":         submission.Status,
			"submittedAt":    submission.SubmittedAt,
		},
	})
}

func (h *HttpEndpoints) getRegistrationStatus(c *gin.Context) {
	registrationID := c.Param("registrationId")
	if !utils.IsURLSafe(registrationID) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid registration id"})
		return
	}

	submission, err := h.registrationService.Status(registrationID)
	if err != nil {
		if errors.Is(err, registration.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Registration not found"})
			return
		}
		slog.Error("failed to look up registration", slog.String("registrationId", registrationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to check registration status",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"registrationId":   submission.RegistrationID,
			"registrationType": submission.RegistrationType,
			"status":           submission.Status,
			"submittedAt":      submission.SubmittedAt,
			"lastUpdated":      submission.LastUpdated,
		},
	})
}

func (h *HttpEndpoints) listRegistrations(c *gin.Context) {
	eventType := c.Param("eventType")

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid pagination parameters"})
		return
	}

	submissions, total, err := h.registrationService.List(eventType, query.Page, query.Limit)
	if err != nil {
		if errors.Is(err, registration.ErrUnknownEventType) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "unknown event type"})
			return
		}
		slog.Error("failed to list registrations", slog.String("eventType", eventType), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch registrations",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"registrations": submissions,
			"total":         total,
			"page":          query.Page,
			"limit":         query.Limit,
		},
	})
}

type UpdateStatusReq struct {
	Status string `json:"status"`
}

func (h *HttpEndpoints) updateRegistrationStatus(c *gin.Context) {
	registrationID := c.Param("registrationId")
	if !utils.IsURLSafe(registrationID) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid registration id"})
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	if !registration.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid status value"})
		return
	}

	submission, err := h.registrationService.UpdateStatus(registrationID, req.Status)
	if err != nil {
		if errors.Is(err, registration.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Registration not found"})
			return
		}
		slog.Error("failed to update registration status", slog.String("registrationId", registrationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update registration status",
			"error":   err.Error(),
		})
		return
	}

	slog.Info("registration status updated",
		slog.String("registrationId", registrationID),
		slog.String("status", submission.Status))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"registrationId": submission.RegistrationID,
			"status":         submission.Status,
			"lastUpdated":    submission.LastUpdated,
		},
	})
}

func validationMessage(err *registration.ValidationError) string {
	if len(err.MissingFields) > 0 {
		return "Missing required fields: " + strings.Join(err.MissingFields, ", ")
	}
	if msg, ok := err.FieldErrors["problemStatement"]; ok {
		return msg
	}
	return "invalid submission"
}
