package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	Address  string
	Password string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// UsuarioPadrao é um usuário fixo do sistema. A senha em texto puro vem do
// ambiente (ou do padrão de fábrica) e é transformada em hash na inicialização.
type UsuarioPadrao struct {
	ID       int
	Username string
	Senha    string
}

// Referencias são as listas fixas usadas nos formulários e filtros.
// Elas não são um schema: os registros gravados aceitam qualquer texto.
type Referencias struct {
	Escolas  []string
	Tecnicos []string
}

type Config struct {
	Server      ServerConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Usuarios    []UsuarioPadrao
	Referencias Referencias
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado ou não pôde ser carregado.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET_KEY", "8F2C1AD495B3CAB9ED89F669C659F"),
			AccessTokenTTL:  time.Hour * 24,
			RefreshTokenTTL: time.Hour * 24 * 7,
		},
		Usuarios: []UsuarioPadrao{
			{ID: 1, Username: getEnv("ADMIN_USERNAME", "admin"), Senha: getEnv("ADMIN_PASSWORD", "admin123")},
			{ID: 2, Username: getEnv("TI_ADMIN_USERNAME", "ti.admin"), Senha: getEnv("TI_ADMIN_PASSWORD", "ti2024")},
		},
		Referencias: Referencias{
			Escolas: getEnvList("ESCOLAS", []string{
				"Escola Municipal Santos",
				"Escola Estadual Silva",
				"Colégio Central",
				"Escola Rural Norte",
				"Instituto Tecnológico",
			}),
			Tecnicos: getEnvList("TECNICOS", []string{
				"João Silva",
				"Maria Santos",
				"Pedro Oliveira",
				"Ana Costa",
				"Carlos Lima",
			}),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
