package configs

import (
	"log"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Server ServerConfig
	Cors   CorsConfig
	Socket SocketConfig
}

type ServerConfig struct {
	Port string
}

type CorsConfig struct {
	AllowOrigin string
}

type SocketConfig struct {
	ReadBufferSize  int
	WriteBufferSize int
	// Large limit to allow inline data-url images on the board
	MaxMessageSize int64
	PingInterval   time.Duration
	PongWait       time.Duration
	WriteWait      time.Duration
}

func GetConfig() *Config {
	once.Do(func() {
		viper.AutomaticEnv()

		viper.SetDefault("SERVER_PORT", "3000")
		viper.SetDefault("CORS_ORIGIN", "http://localhost:5173")
		viper.SetDefault("SOCKET_READ_BUFFER_SIZE", 1024)
		viper.SetDefault("SOCKET_WRITE_BUFFER_SIZE", 1024)
		viper.SetDefault("SOCKET_MAX_MESSAGE_SIZE", 10*1024*1024)
		viper.SetDefault("SOCKET_PING_INTERVAL", "25s")
		viper.SetDefault("SOCKET_PONG_WAIT", "60s")
		viper.SetDefault("SOCKET_WRITE_WAIT", "10s")

		config = &Config{
			Server: ServerConfig{
				Port: viper.GetString("SERVER_PORT"),
			},
			Cors: CorsConfig{
				AllowOrigin: viper.GetString("CORS_ORIGIN"),
			},
			Socket: SocketConfig{
				ReadBufferSize:  viper.GetInt("SOCKET_READ_BUFFER_SIZE"),
				WriteBufferSize: viper.GetInt("SOCKET_WRITE_BUFFER_SIZE"),
				MaxMessageSize:  viper.GetInt64("SOCKET_MAX_MESSAGE_SIZE"),
				PingInterval:    viper.GetDuration("SOCKET_PING_INTERVAL"),
				PongWait:        viper.GetDuration("SOCKET_PONG_WAIT"),
				WriteWait:       viper.GetDuration("SOCKET_WRITE_WAIT"),
			},
		}

		log.Printf("Configs loaded, server port: %v", config.Server.Port)
	})
	return config
}
