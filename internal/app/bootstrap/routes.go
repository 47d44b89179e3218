// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	accountsfeature "github.com/hbcybertech/clubhub/internal/app/features/accounts"
	adminfeature "github.com/hbcybertech/clubhub/internal/app/features/admin"
	announcementsfeature "github.com/hbcybertech/clubhub/internal/app/features/announcements"
	forumfeature "github.com/hbcybertech/clubhub/internal/app/features/forum"
	healthfeature "github.com/hbcybertech/clubhub/internal/app/features/health"
	membersfeature "github.com/hbcybertech/clubhub/internal/app/features/members"
	resourcesfeature "github.com/hbcybertech/clubhub/internal/app/features/resources"
	accountstore "github.com/hbcybertech/clubhub/internal/app/store/accounts"
	adminstore "github.com/hbcybertech/clubhub/internal/app/store/admin"
	announcementstore "github.com/hbcybertech/clubhub/internal/app/store/announcements"
	forumpoststore "github.com/hbcybertech/clubhub/internal/app/store/forumposts"
	memberstore "github.com/hbcybertech/clubhub/internal/app/store/members"
	resourcestore "github.com/hbcybertech/clubhub/internal/app/store/resources"
	"github.com/hbcybertech/clubhub/internal/app/system/gates"
	"github.com/hbcybertech/clubhub/internal/app/system/jwtauth"
	"github.com/hbcybertech/clubhub/internal/app/system/mailer"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. ClubHub builds the store layer
// once, shares the admin gate across features, and mounts one feature
// router per API area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.ClubHubMongoDatabase

	accounts := accountstore.New(db)
	admins := adminstore.New(db)
	general := memberstore.NewGeneral(db)
	executive := memberstore.NewExecutive(db)
	posts := forumpoststore.New(db)
	announcements := announcementstore.New(db)
	resources := resourcestore.New(db)

	auth := jwtauth.New(appCfg.JWTSecret)
	gate := &gates.AdminGate{Admin: admins, Auth: auth}

	mail, err := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		Username: appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)
	if err != nil {
		logger.Error("mailer init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// The API is consumed by a single browser client at a fixed origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{appCfg.ClientOrigin},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	healthHandler := healthfeature.NewHandler(deps.ClubHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	accountHandler := accountsfeature.NewHandler(accounts, gate, auth, mail, appCfg.SystemEmail, appCfg.SiteName, appCfg.BaseURL, logger)
	r.Mount("/account", accountsfeature.Routes(accountHandler))

	adminHandler := adminfeature.NewHandler(admins, gate, auth, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	memberHandler := membersfeature.NewHandler(general, executive, gate, appCfg.SystemEmail, logger)
	r.Mount("/general_member", membersfeature.GeneralRoutes(memberHandler))
	r.Mount("/executive_member", membersfeature.ExecutiveRoutes(memberHandler))

	forumHandler := forumfeature.NewHandler(posts, gate, auth, appCfg.SystemEmail, logger)
	r.Mount("/forum/general", forumfeature.Routes(forumHandler))

	announcementHandler := announcementsfeature.NewHandler(announcements, gate, appCfg.SystemEmail, logger)
	r.Mount("/forum/announcements", announcementsfeature.Routes(announcementHandler))

	resourceHandler := resourcesfeature.NewHandler(resources, gate, logger)
	r.Mount("/resources", resourcesfeature.Routes(resourceHandler))

	return r, nil
}
