package config

import (
	"kitchen-service/src/pkg/log"
	redisModule "kitchen-service/src/pkg/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func LoadRedisConfig(viper *viper.Viper, log log.Log) {
	if !viper.GetBool("redis.enabled") {
		log.Info("redis-config", "Redis is disabled in configuration", "redis", "")
		return
	}

	cfgRedis := &redisModule.CfgRedis{
		RedisHost:     viper.GetString("redis.host"),
		RedisPort:     viper.GetString("redis.port"),
		RedisPassword: viper.GetString("redis.password"),
		RedisDB:       viper.GetInt("redis.db"),
		EnableTLS:     viper.GetBool("redis.tls"),
	}
	redisModule.LoadConfig(cfgRedis)
	if err := redisModule.InitConnection(); err != nil {
		log.Error("redis-config", err.Error(), "redis", "")
	}
}

func NewRedis(viper *viper.Viper) redis.UniversalClient {
	if !viper.GetBool("redis.enabled") {
		return nil
	}
	return redisModule.GetClient()
}
