// internal/pkg/bootstrap/config.go
package bootstrap

import (
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Config 是所有服务共享的配置结构。
// 配置来源有两层：yaml 配置文件打底，环境变量覆盖（部署时只改环境变量即可）。
type Config struct {
	App struct {
		Name string `yaml:"name"`
	} `yaml:"app"`
	Infra struct {
		Mysql struct {
			DSN string `yaml:"dsn"`
		} `yaml:"mysql"`
		Redis struct {
			Addrs string `yaml:"addrs"`
		} `yaml:"redis"`
		Kafka struct {
			Brokers          string `yaml:"brokers"`
			OrderEventsTopic string `yaml:"order_events_topic"`
		} `yaml:"kafka"`
		Minio struct {
			Endpoint  string `yaml:"endpoint"`
			AccessKey string `yaml:"access_key"`
			SecretKey string `yaml:"secret_key"`
			Bucket    string `yaml:"bucket"`
			UseSSL    bool   `yaml:"use_ssl"`
		} `yaml:"minio"`
		Jaeger struct {
			Endpoint string `yaml:"endpoint"`
		} `yaml:"jaeger"`
		Nacos struct {
			Enable      bool   `yaml:"enable"`
			ServerAddrs string `yaml:"server_addrs"`
			Namespace   string `yaml:"namespace"`
			Group       string `yaml:"group"`
		} `yaml:"nacos"`
	} `yaml:"infra"`
}

var currentConfig atomic.Pointer[Config]

// Init 加载配置。配置文件路径由 CONFIG_PATH 指定，文件缺失时完全依赖环境变量与默认值。
func Init() {
	cfg := defaultConfig()

	path := getEnv("CONFIG_PATH", "configs/config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		// 配置文件是可选的，解析失败视为致命错误，静默忽略只会留下更难排查的问题
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic("bootstrap: invalid config file " + path + ": " + err.Error())
		}
	}

	applyEnvOverrides(cfg)
	currentConfig.Store(cfg)
}

// GetCurrentConfig 返回当前生效的配置。必须先调用 Init。
func GetCurrentConfig() *Config {
	cfg := currentConfig.Load()
	if cfg == nil {
		panic("bootstrap: config accessed before Init")
	}
	return cfg
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Infra.Mysql.DSN = "root:root@tcp(localhost:3306)/barista?charset=utf8mb4&parseTime=True&loc=Local"
	cfg.Infra.Redis.Addrs = "localhost:6379"
	cfg.Infra.Kafka.Brokers = "localhost:9092"
	cfg.Infra.Kafka.OrderEventsTopic = "order-events"
	cfg.Infra.Minio.Endpoint = "localhost:9000"
	cfg.Infra.Minio.Bucket = "barista-files"
	cfg.Infra.Jaeger.Endpoint = "http://localhost:14268/api/traces"
	cfg.Infra.Nacos.Group = "DEFAULT_GROUP"
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	cfg.Infra.Mysql.DSN = getEnv("MYSQL_DSN", cfg.Infra.Mysql.DSN)
	cfg.Infra.Redis.Addrs = getEnv("REDIS_ADDRS", cfg.Infra.Redis.Addrs)
	cfg.Infra.Kafka.Brokers = getEnv("KAFKA_BROKERS", cfg.Infra.Kafka.Brokers)
	cfg.Infra.Kafka.OrderEventsTopic = getEnv("ORDER_EVENTS_TOPIC", cfg.Infra.Kafka.OrderEventsTopic)
	cfg.Infra.Minio.Endpoint = getEnv("MINIO_ENDPOINT", cfg.Infra.Minio.Endpoint)
	cfg.Infra.Minio.AccessKey = getEnv("MINIO_ACCESS_KEY", cfg.Infra.Minio.AccessKey)
	cfg.Infra.Minio.SecretKey = getEnv("MINIO_SECRET_KEY", cfg.Infra.Minio.SecretKey)
	cfg.Infra.Minio.Bucket = getEnv("MINIO_BUCKET", cfg.Infra.Minio.Bucket)
	cfg.Infra.Jaeger.Endpoint = getEnv("JAEGER_ENDPOINT", cfg.Infra.Jaeger.Endpoint)
	cfg.Infra.Nacos.ServerAddrs = getEnv("NACOS_SERVER_ADDRS", cfg.Infra.Nacos.ServerAddrs)
	cfg.Infra.Nacos.Namespace = getEnv("NACOS_NAMESPACE", cfg.Infra.Nacos.Namespace)
	cfg.Infra.Nacos.Group = getEnv("NACOS_GROUP", cfg.Infra.Nacos.Group)
	if os.Getenv("NACOS_SERVER_ADDRS") != "" {
		cfg.Infra.Nacos.Enable = true
	}
}

// getEnv 是一个内部辅助函数，从环境变量中读取配置。
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
