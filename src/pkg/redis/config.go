package redis

type CfgRedis struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	EnableTLS     bool
}

var RedisConfigData CfgRedis

func LoadConfig(config *CfgRedis) {
	RedisConfigData = *config
}
