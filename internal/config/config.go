package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	TelegramBotToken      string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	SpreadsheetID         string `mapstructure:"SPREADSHEET_ID"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	SheetsBaseURL         string `mapstructure:"SHEETS_BASE_URL"`

	Timezone    string `mapstructure:"TIMEZONE"`
	MetricsPort int    `mapstructure:"METRICS_PORT"`

	NotifyInterval         time.Duration `mapstructure:"NOTIFY_INTERVAL"`
	ExternalRequestTimeout time.Duration `mapstructure:"EXTERNAL_REQUEST_TIMEOUT"`

	SendRateLimit int `mapstructure:"SEND_RATE_LIMIT"`
	SendRateBurst int `mapstructure:"SEND_RATE_BURST"`

	RetryCount           int           `mapstructure:"RETRY_COUNT"`
	RetryBackoff         time.Duration `mapstructure:"RETRY_BACKOFF"`
	RetryableStatusCodes []int         `mapstructure:"RETRYABLE_STATUS_CODES"`

	CBSlidingWindowSize        int           `mapstructure:"CB_SLIDING_WINDOW_SIZE"`
	CBMinimumRequiredCalls     int           `mapstructure:"CB_MINIMUM_REQUIRED_CALLS"`
	CBFailureRateThreshold     int           `mapstructure:"CB_FAILURE_RATE_THRESHOLD"`
	CBPermittedCallsInHalfOpen int           `mapstructure:"CB_PERMITTED_CALLS_IN_HALF_OPEN"`
	CBWaitDurationInOpenState  time.Duration `mapstructure:"CB_WAIT_DURATION_IN_OPEN_STATE"`
}

func LoadConfig() *Config {
	setDefaults()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return getDefaultConfig()
	}

	return config
}

func setDefaults() {
	viper.SetDefault("SHEETS_BASE_URL", "https://sheets.googleapis.com")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "service-account.json")
	viper.SetDefault("TIMEZONE", "Asia/Manila")
	viper.SetDefault("METRICS_PORT", 9094)

	viper.SetDefault("NOTIFY_INTERVAL", "60s")
	viper.SetDefault("EXTERNAL_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("SEND_RATE_LIMIT", 1)
	viper.SetDefault("SEND_RATE_BURST", 3)

	viper.SetDefault("RETRY_COUNT", 3)
	viper.SetDefault("RETRY_BACKOFF", "1s")
	viper.SetDefault("RETRYABLE_STATUS_CODES", []int{408, 429, 500, 502, 503, 504})

	viper.SetDefault("CB_SLIDING_WINDOW_SIZE", 10)
	viper.SetDefault("CB_MINIMUM_REQUIRED_CALLS", 5)
	viper.SetDefault("CB_FAILURE_RATE_THRESHOLD", 50)
	viper.SetDefault("CB_PERMITTED_CALLS_IN_HALF_OPEN", 2)
	viper.SetDefault("CB_WAIT_DURATION_IN_OPEN_STATE", "10s")
}

func getDefaultConfig() *Config {
	return &Config{
		SheetsBaseURL:         "https://sheets.googleapis.com",
		GoogleCredentialsFile: "service-account.json",
		Timezone:              "Asia/Manila",
		MetricsPort:           9094,

		NotifyInterval:         60 * time.Second,
		ExternalRequestTimeout: 10 * time.Second,

		SendRateLimit: 1,
		SendRateBurst: 3,

		RetryCount:           3,
		RetryBackoff:         1 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},

		CBSlidingWindowSize:        10,
		CBMinimumRequiredCalls:     5,
		CBFailureRateThreshold:     50,
		CBPermittedCallsInHalfOpen: 2,
		CBWaitDurationInOpenState:  10 * time.Second,
	}
}
