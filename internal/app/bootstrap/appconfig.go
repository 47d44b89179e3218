// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration; framework-level settings
// like ports, TLS, and logging live in WAFFLE's CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Auth configuration
	JWTSecret string // Secret for signing user and admin JWTs

	// ClientOrigin is the browser origin allowed by CORS.
	ClientOrigin string

	// SystemEmail is the club's own address: the announcement author
	// address, and the one non-student address accepted by validation.
	SystemEmail string

	// SiteName is the display name used in outbound email.
	SiteName string

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host
	MailSMTPPort int    // SMTP server port
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address
	MailFromName string // From display name

	// Base URL for verification links in email
	BaseURL string // e.g., "https://clubhub.example.com"
}
