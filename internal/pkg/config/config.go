package config

import (
	"fmt"
	"time"

	"slotbook/internal/domain/availability"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Zoom         ZoomConfig
	Google       GoogleConfig
	Booking      BookingConfig
	Availability AvailabilityConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// ZoomConfig holds server-to-server OAuth credentials for the meeting
// resource provider. Base URLs are overridable for tests.
type ZoomConfig struct {
	AccountID    string `envconfig:"ZOOM_ACCOUNT_ID" required:"true"`
	ClientID     string `envconfig:"ZOOM_CLIENT_ID" required:"true"`
	ClientSecret string `envconfig:"ZOOM_CLIENT_SECRET" required:"true"`
	APIBaseURL   string `envconfig:"ZOOM_API_BASE_URL" default:"https://api.zoom.us/v2"`
	TokenURL     string `envconfig:"ZOOM_TOKEN_URL" default:"https://zoom.us/oauth/token"`
	UserID       string `envconfig:"ZOOM_USER_ID" default:"me"`
}

// GoogleConfig covers both the Calendar (busy source + event writer) and
// Gmail (notifier) gateways. Token acquisition happens elsewhere; only the
// refresh token is consumed here.
type GoogleConfig struct {
	ClientID     string `envconfig:"GOOGLE_CLIENT_ID" required:"true"`
	ClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET" required:"true"`
	RefreshToken string `envconfig:"GOOGLE_REFRESH_TOKEN" required:"true"`
	TokenURL     string `envconfig:"GOOGLE_TOKEN_URL" default:"https://oauth2.googleapis.com/token"`
	CalendarID   string `envconfig:"GOOGLE_CALENDAR_ID" default:"primary"`
}

type BookingConfig struct {
	ResourceTimeout time.Duration `envconfig:"BOOKING_RESOURCE_TIMEOUT" default:"15s"`
	NotifyTimeout   time.Duration `envconfig:"BOOKING_NOTIFY_TIMEOUT" default:"10s"`
	RecordTimeout   time.Duration `envconfig:"BOOKING_RECORD_TIMEOUT" default:"10s"`
}

type AvailabilityConfig struct {
	OpenHour    int   `envconfig:"AVAILABILITY_OPEN_HOUR" default:"8"`
	OpenMinute  int   `envconfig:"AVAILABILITY_OPEN_MINUTE" default:"0"`
	CloseHour   int   `envconfig:"AVAILABILITY_CLOSE_HOUR" default:"17"`
	CloseMinute int   `envconfig:"AVAILABILITY_CLOSE_MINUTE" default:"0"`
	Weekdays    []int `envconfig:"AVAILABILITY_WEEKDAYS" default:"1,2,3,4,5"`
}

// BusinessHours converts the raw env values into the domain policy.
func (c AvailabilityConfig) BusinessHours() (availability.BusinessHours, error) {
	open, err := availability.NewTimeOfDay(c.OpenHour, c.OpenMinute)
	if err != nil {
		return availability.BusinessHours{}, err
	}
	closing, err := availability.NewTimeOfDay(c.CloseHour, c.CloseMinute)
	if err != nil {
		return availability.BusinessHours{}, err
	}
	days := make([]time.Weekday, 0, len(c.Weekdays))
	for _, d := range c.Weekdays {
		if d < 0 || d > 6 {
			return availability.BusinessHours{}, fmt.Errorf("weekday out of range: %d", d)
		}
		days = append(days, time.Weekday(d))
	}
	return availability.NewBusinessHours(days, open, closing)
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			ResourceTimeout: time.Second,
			NotifyTimeout:   time.Second,
			RecordTimeout:   time.Second,
		},
	}
}
