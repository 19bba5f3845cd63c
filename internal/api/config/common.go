package config

const (
	StreakPolicyTrust    = "trust"
	StreakPolicyCalendar = "calendar"

	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"
)

// Config 配置主体
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	DB           DBConfig           `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Mongo        MongoConfig        `mapstructure:"mongo"`
	MinIO        MinIOConfig        `mapstructure:"minio"`
	LLM          LLMConfig          `mapstructure:"llm"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Log          LogConfig          `mapstructure:"log"`
	Gamification GamificationConfig `mapstructure:"gamification"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	CORS         CORSConfig         `mapstructure:"cors"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	Bucket           string `mapstructure:"bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
}

type LLMConfig struct {
	Provider       string           `mapstructure:"provider"`
	URL            string           `mapstructure:"url"`
	TextModel      string           `mapstructure:"text_model"`
	ApiKey         string           `mapstructure:"api_key"`
	MaxConcurrency int64            `mapstructure:"max_concurrency"`
	PromptsPath    PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	Interview string `mapstructure:"interview"`
	Feedback  string `mapstructure:"feedback"`
	Quiz      string `mapstructure:"quiz"`
}

type KafkaConfig struct {
	Enable   bool           `mapstructure:"enable"`
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
	Reward   TopicConfig    `mapstructure:"reward"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type TopicConfig struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
	CookieName  string `mapstructure:"cookie_name"`
	Secure      bool   `mapstructure:"secure"`
}

// LogConfig 日志输出配置
type LogConfig struct {
	Level           string `mapstructure:"level"`
	FilePath        string `mapstructure:"file_path"`
	MaxSizeMB       int    `mapstructure:"max_size_mb"`
	MaxBackups      int    `mapstructure:"max_backups"`
	MaxAgeDays      int    `mapstructure:"max_age_days"`
	Compress        bool   `mapstructure:"compress"`
	LogstashAddress string `mapstructure:"logstash_address"`
	LogstashIndex   string `mapstructure:"logstash_index"`
}

// GamificationConfig 奖励规则参数
type GamificationConfig struct {
	RewardAmount            int64  `mapstructure:"reward_amount"`
	StreakPolicy            string `mapstructure:"streak_policy"`
	LeaderboardCacheSeconds int    `mapstructure:"leaderboard_cache_seconds"`
}

type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
