package config

import (
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DataDir      string
	IsProduction bool

	// DefaultInterestRate is the APR (percent) assigned to new accounts.
	DefaultInterestRate decimal.Decimal

	// Ledger limits.
	MaxContribution            decimal.Decimal
	MaxWithdrawal              decimal.Decimal
	MinWithdrawalMembershipAge int // days

	// Loan eligibility.
	MinLoanMembershipAge int // days
	MinLoanAmount        decimal.Decimal
	MaxLoanAmount        decimal.Decimal

	// MaxLoginAttempts bounds the console login loop.
	MaxLoginAttempts int
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every key has a default, so an empty environment is valid.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("THRIFT_DATA_DIR", "data")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DEFAULT_INTEREST_RATE", "3.5")
	viper.SetDefault("MAX_CONTRIBUTION", "10000")
	viper.SetDefault("MAX_WITHDRAWAL", "5000")
	viper.SetDefault("MIN_WITHDRAWAL_MEMBERSHIP_DAYS", 30)
	viper.SetDefault("MIN_LOAN_MEMBERSHIP_DAYS", 90)
	viper.SetDefault("MIN_LOAN_AMOUNT", "100")
	viper.SetDefault("MAX_LOAN_AMOUNT", "50000")
	viper.SetDefault("MAX_LOGIN_ATTEMPTS", 3)

	viper.AutomaticEnv()

	cfg := &Config{
		DataDir:                    viper.GetString("THRIFT_DATA_DIR"),
		IsProduction:               viper.GetBool("IS_PRODUCTION"),
		MinWithdrawalMembershipAge: viper.GetInt("MIN_WITHDRAWAL_MEMBERSHIP_DAYS"),
		MinLoanMembershipAge:       viper.GetInt("MIN_LOAN_MEMBERSHIP_DAYS"),
		MaxLoginAttempts:           viper.GetInt("MAX_LOGIN_ATTEMPTS"),
	}

	var err error
	if cfg.DefaultInterestRate, err = decimal.NewFromString(viper.GetString("DEFAULT_INTEREST_RATE")); err != nil {
		return nil, err
	}
	if cfg.MaxContribution, err = decimal.NewFromString(viper.GetString("MAX_CONTRIBUTION")); err != nil {
		return nil, err
	}
	if cfg.MaxWithdrawal, err = decimal.NewFromString(viper.GetString("MAX_WITHDRAWAL")); err != nil {
		return nil, err
	}
	if cfg.MinLoanAmount, err = decimal.NewFromString(viper.GetString("MIN_LOAN_AMOUNT")); err != nil {
		return nil, err
	}
	if cfg.MaxLoanAmount, err = decimal.NewFromString(viper.GetString("MAX_LOAN_AMOUNT")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration an empty environment produces. Used by
// tests that need the standard limits without touching the process env.
func Default() *Config {
	return &Config{
		DataDir:                    "data",
		DefaultInterestRate:        decimal.RequireFromString("3.5"),
		MaxContribution:            decimal.NewFromInt(10000),
		MaxWithdrawal:              decimal.NewFromInt(5000),
		MinWithdrawalMembershipAge: 30,
		MinLoanMembershipAge:       90,
		MinLoanAmount:              decimal.NewFromInt(100),
		MaxLoanAmount:              decimal.NewFromInt(50000),
		MaxLoginAttempts:           3,
	}
}
