// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"
	"sync"

	"github.com/BaillieLodges/beckons-go/internal/application/services"
	"github.com/BaillieLodges/beckons-go/internal/domain/entities/content"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/performance"
	"github.com/BaillieLodges/beckons-go/internal/presentation/http/middleware"
	"github.com/BaillieLodges/beckons-go/internal/presentation/templates"
	"github.com/gin-gonic/gin"
)

// PageHandlers renders the server-side site pages.
type PageHandlers struct {
	contentService *services.ContentService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewPageHandlers creates page handlers with injected dependencies
func NewPageHandlers(contentService *services.ContentService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PageHandlers {
	return &PageHandlers{
		contentService: contentService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// chrome assembles the shared page shell content. The three lookups run
// concurrently and degrade independently; a missing footer never blanks
// the navigation.
func (h *PageHandlers) chrome(c *gin.Context) templates.PageChrome {
	ctx := c.Request.Context()
	chrome := templates.PageChrome{EditMode: middleware.GetEditMode(c)}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		chrome.Settings = h.contentService.GetSiteSettings(ctx)
	}()
	go func() {
		defer wg.Done()
		chrome.Navigation = h.contentService.GetNavigation(ctx)
	}()
	go func() {
		defer wg.Done()
		chrome.Footer = h.contentService.GetFooterContent(ctx)
	}()
	wg.Wait()

	return chrome
}

func renderHTML(c *gin.Context, html string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetHome handles GET / - the home page
func (h *PageHandlers) GetHome(c *gin.Context) {
	marker := h.perfTracker.StartOperation("page:home")
	defer marker.Complete()

	var (
		data   *content.HomePageData
		chrome templates.PageChrome
		wg     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		data = h.contentService.GetHomePage(c.Request.Context())
	}()
	go func() {
		defer wg.Done()
		chrome = h.chrome(c)
	}()
	wg.Wait()

	marker.SetSuccess(data != nil)
	renderHTML(c, templates.RenderPage(chrome, templates.RenderHomePage(data, chrome.EditMode)))
}

// formPage renders one of the two form pages, fetching the page payload and
// the shared chrome in parallel.
func (h *PageHandlers) formPage(c *gin.Context, marker *performance.Marker, entrySlug string, render func(*content.FormPageData) string) {
	var (
		data   *content.FormPageData
		chrome templates.PageChrome
		wg     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		data = h.contentService.GetFormPage(c.Request.Context(), entrySlug)
	}()
	go func() {
		defer wg.Done()
		chrome = h.chrome(c)
	}()
	wg.Wait()

	if data != nil {
		chrome.MetaTitle = data.MetaTitle
		chrome.MetaDescription = data.MetaDescription
	}

	marker.SetSuccess(data != nil)
	renderHTML(c, templates.RenderPage(chrome, render(data)))
}

// GetInquire handles GET /inquire - the inquiry form page
func (h *PageHandlers) GetInquire(c *gin.Context) {
	marker := h.perfTracker.StartOperation("page:inquire")
	defer marker.Complete()

	h.formPage(c, marker, "inquire", templates.RenderInquirePage)
}

// GetEmailSubscription handles GET /email-subscription - the subscription form page
func (h *PageHandlers) GetEmailSubscription(c *gin.Context) {
	marker := h.perfTracker.StartOperation("page:email_subscription")
	defer marker.Complete()

	h.formPage(c, marker, "email-subscription", templates.RenderSubscriptionPage)
}

// GetThankYou handles GET /thank-you - the post-submission confirmation page
func (h *PageHandlers) GetThankYou(c *gin.Context) {
	marker := h.perfTracker.StartOperation("page:thank_you")
	defer marker.Complete()

	var (
		data   *content.ThankYouPageData
		chrome templates.PageChrome
		wg     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		data = h.contentService.GetThankYouPage(c.Request.Context())
	}()
	go func() {
		defer wg.Done()
		chrome = h.chrome(c)
	}()
	wg.Wait()

	marker.SetSuccess(data != nil)
	renderHTML(c, templates.RenderPage(chrome, templates.RenderThankYouPage(data)))
}
