package router

import (
	"github.com/webatelier/landing-api/internal/application"
	"github.com/webatelier/landing-api/internal/container"
	"github.com/webatelier/landing-api/internal/infrastructure/mongodb"
	handlers "github.com/webatelier/landing-api/internal/interface/http"
	"github.com/webatelier/landing-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo().Database()

	reviewRepo := mongodb.NewReviewRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)

	reviewSvc := application.NewReviewService(reviewRepo, logger)
	projectSvc := application.NewProjectService(projectRepo, logger)
	authSvc := application.NewAuthService(
		&application.EnvCredentialStore{
			Email:        cfg.AdminEmail,
			Password:     cfg.AdminPassword,
			PasswordHash: cfg.AdminPasswordHash,
		},
		container.GetJWT(),
		logger,
	)
	uploadSvc := application.NewUploadService(
		container.GetGCS(),
		cfg.GCSBucket,
		cfg.GCSFolder,
		cfg.UploadMaxBytes,
		cfg.UploadTypes(),
		logger,
	)
	contactSvc := application.NewContactService(
		container.GetRabbitPub(),
		container.GetMailgun(),
		cfg.ContactRecipient,
		cfg.MailSendEnabled,
		logger,
	)

	r.Add(modules.NewReviewModule(handlers.NewReviewHandler(reviewSvc, logger)))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger), container.GetJWT()))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), container.GetJWT()))
	r.Add(modules.NewUploadModule(handlers.NewUploadHandler(uploadSvc, logger), container.GetJWT()))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger)))
}
