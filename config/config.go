package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Mongo     MongoConfig     `yaml:"mongo"`
	API       APIConfig       `yaml:"api"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Processor ProcessorConfig `yaml:"processor"`
	Channels  []ChannelSource `yaml:"channels"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type APIConfig struct {
	Logging        LoggingConfig `yaml:"logging"`
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type IngestConfig struct {
	Logging LoggingConfig `yaml:"logging"`

	// ChannelFetchBatchSize 는 업로드 피드에서 한 번에 가져올 최대 영상 수이다.
	ChannelFetchBatchSize int `yaml:"channel_fetch_batch_size"`

	// RecoveryGraceMinutes 가 지나도록 enrichment가 끝나지 않은 영상만
	// 복구 대상으로 삼는다. 0 이하면 기본값(30분)을 사용한다.
	RecoveryGraceMinutes int `yaml:"recovery_grace_minutes"`

	// RecoveryBatchSize 는 복구 주기마다 재발행할 최대 이벤트 수이다.
	RecoveryBatchSize int `yaml:"recovery_batch_size"`
}

type ProcessorConfig struct {
	Logging      LoggingConfig      `yaml:"logging"`
	LLM          LLMConfig          `yaml:"llm"`
	SummaryQuota SummaryQuotaConfig `yaml:"summary_quota"`
}

type LLMConfig struct {
	Provider  string `yaml:"provider"`
	ModelName string `yaml:"model_name"`
}

// SummaryQuotaConfig 는 요약용 LLM 호출에 대한 속도/일일 한도를 정의한다.
type SummaryQuotaConfig struct {
	// RequestsPerMinute 는 요약용 LLM 호출에 대한 분당 최대 요청 수이다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 요약용 LLM 호출에 대한 일일 최대 요청 수이다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

// ChannelSource is a single channel configuration item
type ChannelSource struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	FeedURL     string `yaml:"feed_url"`
	ChannelType string `yaml:"channel_type"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
