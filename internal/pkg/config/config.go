package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, scheduling policy), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Coordination CoordinationConfig
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
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// CoordinationConfig carries the scheduling policy of the reservation
// coordinator. These are policy knobs with no derivation behind them; keep
// them here rather than as constants in the usecase layer.
type CoordinationConfig struct {
	// EtaBaseOffset models nominal travel time from the lateness report
	// location to the station.
	EtaBaseOffset time.Duration `envconfig:"ETA_BASE_OFFSET" default:"19m"`
	// OnScheduleWindow is how far past reservation_start the ETA may drift
	// before a shift is attempted.
	OnScheduleWindow time.Duration `envconfig:"ETA_ON_SCHEDULE_WINDOW" default:"15m"`
	// ShiftStep is the fixed increment applied to reservation_end on a
	// lateness-driven shift.
	ShiftStep time.Duration `envconfig:"RESERVATION_SHIFT_STEP" default:"5m"`
	// ExtendLookahead is the conflict look-ahead window for extension
	// eligibility checks.
	ExtendLookahead time.Duration `envconfig:"RESERVATION_EXTEND_LOOKAHEAD" default:"10m"`
	// ExtendStep is the increment applied on an explicit extension.
	ExtendStep time.Duration `envconfig:"RESERVATION_EXTEND_STEP" default:"10m"`
	// ChargingIdleTimeout is how long a charging session may go without a
	// charge update before it auto-completes.
	ChargingIdleTimeout time.Duration `envconfig:"CHARGING_IDLE_TIMEOUT" default:"30s"`
	// StreamHeartbeat is the ping interval on notification streams.
	StreamHeartbeat time.Duration `envconfig:"STREAM_HEARTBEAT" default:"5s"`
	// ChargeTickInterval is the pace of the simulated charger loop.
	ChargeTickInterval time.Duration `envconfig:"CHARGE_TICK_INTERVAL" default:"1s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Coordination: CoordinationConfig{
			EtaBaseOffset:       19 * time.Minute,
			OnScheduleWindow:    15 * time.Minute,
			ShiftStep:           5 * time.Minute,
			ExtendLookahead:     10 * time.Minute,
			ExtendStep:          10 * time.Minute,
			ChargingIdleTimeout: 100 * time.Millisecond,
			StreamHeartbeat:     50 * time.Millisecond,
			ChargeTickInterval:  10 * time.Millisecond,
		},
	}
}
