package handlers

import (
	"net/http"
	"strings"

	"github.com/BaillieLodges/beckons-go/internal/application/services"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// LeadHandlers contains the inquiry and subscription form endpoints.
type LeadHandlers struct {
	leadService *services.LeadService
	logger      *logging.ChanneledLogger
}

// NewLeadHandlers creates lead handlers with injected dependencies
func NewLeadHandlers(leadService *services.LeadService, logger *logging.ChanneledLogger) *LeadHandlers {
	return &LeadHandlers{
		leadService: leadService,
		logger:      logger,
	}
}

// wantsJSON distinguishes fetch submissions from plain form posts so the
// handler can answer with JSON or a redirect accordingly.
func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Content-Type"), "application/json") ||
		strings.Contains(c.GetHeader("Accept"), "application/json")
}

// PostInquiry handles POST /api/inquiries - inquiry form submission
func (h *LeadHandlers) PostInquiry(c *gin.Context) {
	var req services.InquiryRequest
	var err error
	if strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBind(&req)
	}
	if err != nil {
		h.logger.Leads().Warn("Inquiry submission binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	inquiry, err := h.leadService.SubmitInquiry(&req)
	if err != nil {
		h.logger.Leads().Error("Inquiry submission failed", "error", err.Error())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusCreated, gin.H{"id": inquiry.ID, "success": true})
		return
	}
	c.Redirect(http.StatusSeeOther, "/thank-you")
}

// PostSubscription handles POST /api/subscriptions - email subscription submission
func (h *LeadHandlers) PostSubscription(c *gin.Context) {
	var req services.SubscriptionRequest
	var err error
	if strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBind(&req)
	}
	if err != nil {
		h.logger.Leads().Warn("Subscription binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	subscriber, err := h.leadService.Subscribe(&req)
	if err != nil {
		h.logger.Leads().Error("Subscription failed", "error", err.Error())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusCreated, gin.H{"id": subscriber.ID, "success": true})
		return
	}
	c.Redirect(http.StatusSeeOther, "/thank-you")
}
