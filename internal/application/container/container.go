// Package container provides dependency injection for all singleton services
package container

import (
	"fmt"

	"github.com/BaillieLodges/beckons-go/config"
	"github.com/BaillieLodges/beckons-go/internal/application/services"
	"github.com/BaillieLodges/beckons-go/internal/domain/entities/leads"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/caching/manager"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/cms"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/email"
	leadsrepo "github.com/BaillieLodges/beckons-go/internal/infrastructure/persistence/leads"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/messaging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/performance"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/persistence/database"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/security"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application Services (stateless singletons)
	ContentService  *services.ContentService
	LeadService     *services.LeadService
	EditorService   *services.EditorService
	MutationService *services.MutationService

	// Infrastructure Dependencies
	CMSClient    *cms.Client
	CacheManager *manager.Manager
	DB           *database.DB
	LeadRepo     leads.Repository
	EmailService email.Service
	Broadcaster  *messaging.PreviewBroadcaster
	Logger       *logging.ChanneledLogger
	PerfTracker  *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer() (*Container, error) {
	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	perfTracker := performance.NewTracker(performance.DefaultTrackerConfig())

	cacheManager := manager.NewManager()

	cmsClient := cms.NewClient(config.CMSGraphQLURL, config.CMSOrganizationID, config.CMSRequestTimeout, logger)

	db, err := database.NewConnectionWithLogger(config.LeadsDBDriver, config.LeadsDBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open leads database: %w", err)
	}
	db.ConfigurePool(config.DBMaxOpenConns, config.DBMaxIdleConns)

	leadRepo, err := leadsrepo.NewRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize leads repository: %w", err)
	}

	// Email is optional; without an API key leads are stored silently.
	emailService, err := email.NewService()
	if err != nil {
		logger.System().Warn("Email service disabled", "reason", err.Error())
		emailService = nil
	}

	jwtSecret := config.JWTSecret
	if jwtSecret == "" {
		// Ephemeral secret; editor sessions will not survive a restart.
		jwtSecret, err = security.GenerateSecureKey(64)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		logger.System().Warn("JWT_SECRET not set, using ephemeral session secret")
	}

	broadcaster := messaging.NewPreviewBroadcaster(logger)

	return &Container{
		ContentService: services.NewContentService(cmsClient, cacheManager.ContentTypes(), logger, perfTracker),
		LeadService:    services.NewLeadService(leadRepo, emailService, config.InquiryNotifyEmail, logger, perfTracker),
		EditorService:  services.NewEditorService(config.EditorPasswordHash, jwtSecret, config.EditorSessionTTL, logger),
		MutationService: services.NewMutationService(
			cmsClient,
			config.CMSEmail,
			config.CMSPassword,
			config.CMSAuthToken,
			config.MediaCDNBase,
			broadcaster,
			logger,
			perfTracker,
		),

		CMSClient:    cmsClient,
		CacheManager: cacheManager,
		DB:           db,
		LeadRepo:     leadRepo,
		EmailService: emailService,
		Broadcaster:  broadcaster,
		Logger:       logger,
		PerfTracker:  perfTracker,
	}, nil
}

// Close releases held infrastructure resources.
func (c *Container) Close() error {
	if c.Broadcaster != nil {
		c.Broadcaster.Stop()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
