package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"

	"hotel-dashboard/utils"
)

const (
	SeedSourceEmbedded = "embedded"
	SeedSourceMySQL    = "mysql"
)

type Config struct {
	Port             string
	CORSOrigins      []string
	SimulatedLatency bool
	SeedSource       string
	MySQLDSN         string
}

// Load reads the process configuration from the environment. Call
// godotenv.Load first if a .env file should be honoured.
func Load() (Config, error) {
	cfg := Config{
		Port:             utils.EnvOrDefault("PORT", "8080"),
		CORSOrigins:      parseCorsOrigins(utils.EnvOrDefault("CORS_ORIGINS", "")),
		SimulatedLatency: utils.EnvBool("SIMULATED_LATENCY", true),
		SeedSource:       strings.ToLower(utils.EnvOrDefault("SEED_SOURCE", SeedSourceEmbedded)),
	}

	switch cfg.SeedSource {
	case SeedSourceEmbedded:
	case SeedSourceMySQL:
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return Config{}, fmt.Errorf("resolve mysql dsn: %w", err)
		}
		cfg.MySQLDSN = dsn
	default:
		return Config{}, fmt.Errorf("unknown SEED_SOURCE %q (want %q or %q)", cfg.SeedSource, SeedSourceEmbedded, SeedSourceMySQL)
	}

	return cfg, nil
}

func parseCorsOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func newMySQLConfig(user, pass, host, port, dbName string) *gomysql.Config {
	c := gomysql.NewConfig()
	c.User = user
	c.Passwd = pass
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(host, port)
	c.DBName = dbName
	c.ParseTime = true
	// DATE columns hold calendar days; UTC keeps them from shifting by the host offset
	c.Loc = time.UTC
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	pass, _ := u.User.Password()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	c := newMySQLConfig(u.User.Username(), pass, u.Hostname(), port, dbName)
	for k, v := range u.Query() {
		if len(v) > 0 {
			c.Params[k] = v[0]
		}
	}
	return c.FormatDSN(), nil
}

func resolveMySQLDSN() (string, error) {
	raw := utils.EnvOrDefault("MYSQL_URL", "")
	if raw == "" {
		raw = utils.EnvOrDefault("DATABASE_URL", "")
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		// plain driver DSN; parse it so a typo fails at startup
		c, err := gomysql.ParseDSN(raw)
		if err != nil {
			return "", err
		}
		c.ParseTime = true
		return c.FormatDSN(), nil
	}

	c := newMySQLConfig(
		utils.EnvOrDefault("DB_USER", "root"),
		utils.EnvOrDefault("DB_PASS", ""),
		utils.EnvOrDefault("DB_HOST", "127.0.0.1"),
		utils.EnvOrDefault("DB_PORT", "3306"),
		utils.EnvOrDefault("DB_NAME", "hotel_db"),
	)
	return c.FormatDSN(), nil
}
