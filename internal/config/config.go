package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	EnvProduction = "production"

	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

type Config struct {
	Environment   string `mapstructure:"app_env"`
	Port          string `mapstructure:"port"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	FrontendURL   string `mapstructure:"frontend_url"`
	LogLevel      string `mapstructure:"log_level"`

	Store struct {
		Driver      string `mapstructure:"driver"`
		DatabaseURL string `mapstructure:"database_url"`
	} `mapstructure:"store"`

	AWS struct {
		Region                  string `mapstructure:"region"`
		DynamoDBEndpoint        string `mapstructure:"dynamodb_endpoint"`
		TenantsTable            string `mapstructure:"tenants_table"`
		QuotesTable             string `mapstructure:"quotes_table"`
		ChecklistsTable         string `mapstructure:"checklists_table"`
		ClientsTable            string `mapstructure:"clients_table"`
		TeamMembersTable        string `mapstructure:"team_members_table"`
		ChecklistTemplatesTable string `mapstructure:"checklist_templates_table"`
	} `mapstructure:"aws"`

	JWT struct {
		Secret string        `mapstructure:"secret"`
		TTL    time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`

	Stripe struct {
		SecretKey      string `mapstructure:"secret_key"`
		WebhookSecret  string `mapstructure:"webhook_secret"`
		MonthlyPriceID string `mapstructure:"monthly_price_id"`
		AnnualPriceID  string `mapstructure:"annual_price_id"`
	} `mapstructure:"stripe"`

	Email struct {
		ResendAPIKey string `mapstructure:"resend_api_key"`
		From         string `mapstructure:"from"`
	} `mapstructure:"email"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Sentry struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"sentry"`

	RateLimit struct {
		PublicPerSecond float64 `mapstructure:"public_per_second"`
		PublicBurst     int     `mapstructure:"public_burst"`
	} `mapstructure:"rate_limit"`
}

// Load reads config.yaml (optional) and environment overrides.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "config: unmarshal")
	}
	if c.Stripe.MonthlyPriceID == "" {
		c.Stripe.MonthlyPriceID = v.GetString("stripe.price_id")
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	c.FrontendURL = strings.TrimRight(c.FrontendURL, "/")

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("public_base_url", "https://getcleanlyquote.com")
	v.SetDefault("frontend_url", "https://getcleanlyquote.com")
	v.SetDefault("log_level", "info")
	v.SetDefault("store.driver", StoreDynamoDB)
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.tenants_table", "tenants")
	v.SetDefault("aws.quotes_table", "quotes")
	v.SetDefault("aws.checklists_table", "quote_checklists")
	v.SetDefault("aws.clients_table", "clients")
	v.SetDefault("aws.team_members_table", "team_members")
	v.SetDefault("aws.checklist_templates_table", "checklist_templates")
	v.SetDefault("jwt.ttl", 7*24*time.Hour)
	v.SetDefault("email.from", "CleanlyQuote <quotes@getcleanlyquote.com>")
	v.SetDefault("rate_limit.public_per_second", 5)
	v.SetDefault("rate_limit.public_burst", 20)
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("app_env", "APP_ENV")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("public_base_url", "PUBLIC_BASE_URL")
	_ = v.BindEnv("frontend_url", "FRONTEND_URL")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("store.driver", "STORE_DRIVER")
	_ = v.BindEnv("store.database_url", "DATABASE_URL")
	_ = v.BindEnv("aws.region", "AWS_REGION")
	_ = v.BindEnv("aws.dynamodb_endpoint", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("aws.tenants_table", "TENANTS_TABLE")
	_ = v.BindEnv("aws.quotes_table", "QUOTES_TABLE")
	_ = v.BindEnv("aws.checklists_table", "CHECKLISTS_TABLE")
	_ = v.BindEnv("aws.clients_table", "CLIENTS_TABLE")
	_ = v.BindEnv("aws.team_members_table", "TEAM_MEMBERS_TABLE")
	_ = v.BindEnv("aws.checklist_templates_table", "CHECKLIST_TEMPLATES_TABLE")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET")
	_ = v.BindEnv("jwt.ttl", "JWT_TTL")
	_ = v.BindEnv("stripe.secret_key", "STRIPE_SECRET_KEY")
	_ = v.BindEnv("stripe.webhook_secret", "STRIPE_WEBHOOK_SECRET")
	_ = v.BindEnv("stripe.monthly_price_id", "STRIPE_MONTHLY_PRICE_ID")
	_ = v.BindEnv("stripe.price_id", "STRIPE_PRICE_ID")
	_ = v.BindEnv("stripe.annual_price_id", "STRIPE_ANNUAL_PRICE_ID")
	_ = v.BindEnv("email.resend_api_key", "RESEND_API_KEY")
	_ = v.BindEnv("email.from", "FROM_EMAIL")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")
	_ = v.BindEnv("sentry.dsn", "SENTRY_DSN")
	_ = v.BindEnv("rate_limit.public_per_second", "PUBLIC_RATE_LIMIT")
	_ = v.BindEnv("rate_limit.public_burst", "PUBLIC_RATE_BURST")
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDynamoDB:
	case StorePostgres:
		if c.Store.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres store")
		}
	default:
		return errors.Newf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.JWT.Secret == "" {
		if c.IsProduction() {
			return errors.New("config: JWT_SECRET is required in production")
		}
	}
	if c.IsProduction() && c.Stripe.WebhookSecret == "" {
		return errors.New("config: STRIPE_WEBHOOK_SECRET is required in production")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

// WebhookSkipVerify reports whether webhook payloads may be accepted without a
// signature. Only outside production and only without a configured secret.
func (c Config) WebhookSkipVerify() bool {
	return !c.IsProduction() && c.Stripe.WebhookSecret == ""
}

func (c Config) ShareURL(token string) string {
	return c.PublicBaseURL + "/proposal/" + token
}
