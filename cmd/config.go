package cmd

import "time"

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	RedisAddr            string
	CatalogCacheTTL      time.Duration
	DefaultPaymentMethod string
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSslMode
}
