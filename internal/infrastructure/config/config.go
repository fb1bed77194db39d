package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces the variables. envconfig falls back to the bare tag
// name, which is how deployments set them (PORT, LOG_LEVEL, ...).
const EnvPrefix = "SPARELAB"

const (
	TransitionPolicyPermissive = "permissive"
	TransitionPolicyStrict     = "strict"

	PartPolicyLenient = "lenient"
	PartPolicyStrict  = "strict"

	AnnotationStoreMemory   = "memory"
	AnnotationStoreDynamoDB = "dynamodb"
)

type Config struct {
	App         AppConfig
	JobCard     JobCardConfig
	Catalog     CatalogConfig
	Storage     StorageConfig
	Annotations AnnotationConfig
	AWS         AWSConfig
}

type AppConfig struct {
	Env                string `envconfig:"APP_ENV" default:"development"`
	Port               int    `envconfig:"PORT" default:"8080"`
	ServiceName        string `envconfig:"SERVICE_NAME" default:"sparelab-epc"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string `envconfig:"LOG_FORMAT" default:"json"`
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// AllowedOrigins splits the comma separated origin list.
func (a AppConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(a.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

type JobCardConfig struct {
	IDPrefix         string `envconfig:"JOBCARD_ID_PREFIX" default:"JC"`
	TransitionPolicy string `envconfig:"JOBCARD_TRANSITION_POLICY" default:"permissive"`
	PartPolicy       string `envconfig:"JOBCARD_PART_POLICY" default:"lenient"`
}

func (j JobCardConfig) StrictTransitions() bool {
	return strings.EqualFold(j.TransitionPolicy, TransitionPolicyStrict)
}

func (j JobCardConfig) StrictParts() bool {
	return strings.EqualFold(j.PartPolicy, PartPolicyStrict)
}

type CatalogConfig struct {
	// Path overrides the embedded catalog when set.
	Path string `envconfig:"CATALOG_PATH"`
}

type StorageConfig struct {
	UploadsDir string `envconfig:"UPLOADS_DIR" default:"uploads"`
}

type AnnotationConfig struct {
	Store         string `envconfig:"ANNOTATION_STORE" default:"memory"`
	HotspotsTable string `envconfig:"HOTSPOTS_TABLE" default:"hotspots"`
	DiagramsTable string `envconfig:"DIAGRAMS_TABLE" default:"diagrams"`
}

// AWSConfig holds the DynamoDB connection settings. Local DynamoDB does not
// validate credentials but the SDK requires some.
type AWSConfig struct {
	Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.App.Port)
	}
	if strings.TrimSpace(c.JobCard.IDPrefix) == "" {
		return fmt.Errorf("JOBCARD_ID_PREFIX must not be empty")
	}
	if err := oneOf("JOBCARD_TRANSITION_POLICY", c.JobCard.TransitionPolicy, TransitionPolicyPermissive, TransitionPolicyStrict); err != nil {
		return err
	}
	if err := oneOf("JOBCARD_PART_POLICY", c.JobCard.PartPolicy, PartPolicyLenient, PartPolicyStrict); err != nil {
		return err
	}
	return oneOf("ANNOTATION_STORE", c.Annotations.Store, AnnotationStoreMemory, AnnotationStoreDynamoDB)
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if strings.EqualFold(strings.TrimSpace(value), a) {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (allowed: %s)", key, value, strings.Join(allowed, ", "))
}
