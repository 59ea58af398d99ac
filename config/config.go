package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// DefaultTotalBeds is the assumed hospital-wide bed capacity used for the
// occupancy rollup when TOTAL_BEDS is not set. It is a reporting constant,
// not derived from actual bed inventory.
const DefaultTotalBeds = 100

// Config holds the project config values
type Config struct {
	Url              string
	DatabaseName     string
	BaseUrl          string
	Port             string
	TotalBeds        int
	LogoURL          string
	SendgridAPIKey   string
	ReportRecipients string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	totalBeds := DefaultTotalBeds
	if v := os.Getenv("TOTAL_BEDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			zap.S().Warnf("invalid TOTAL_BEDS %q, using default of %v", v, DefaultTotalBeds)
		} else {
			totalBeds = n
		}
	}

	return &Config{
		Url:              os.Getenv("DB_URI"),
		DatabaseName:     os.Getenv("DB_NAME"),
		BaseUrl:          os.Getenv("BASE_URL"),
		Port:             os.Getenv("PORT"),
		TotalBeds:        totalBeds,
		LogoURL:          os.Getenv("LOGO_URL"),
		SendgridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		ReportRecipients: os.Getenv("REPORT_RECIPIENTS"),
	}

}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
	return
}
