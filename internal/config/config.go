package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

// PricingConfig — tabela de preços dos itens da venda.
// Zeros são preenchidos com os valores padrão da tabela comercial.
type PricingConfig struct {
	Conexao    float64 `yaml:"conexao"`
	Usuario    float64 `yaml:"usuario"`
	Plataforma float64 `yaml:"plataforma"`
	UraCanal   float64 `yaml:"ura_canal"`
	IaCanal    float64 `yaml:"ia_canal"`
	ApiOficial float64 `yaml:"api_oficial"`
}

type MetaConfig struct {
	// Meta mensal de faturamento usada no dashboard.
	Mensal float64 `yaml:"mensal"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Migrations struct {
		Path string `yaml:"path"`
	} `yaml:"migrations"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
	Meta     MetaConfig     `yaml:"meta"`
	Pricing  PricingConfig  `yaml:"pricing"`
	Files    struct {
		RootDir string `yaml:"root_dir"`
	} `yaml:"files"`
}

func LoadConfig() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] .env não carregado: %v", err)
	}

	var cfg Config
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	f, err := os.Open(path)
	if err != nil {
		panic("Falha ao abrir " + path + ": " + err.Error())
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Falha ao ler " + path + ": " + err.Error())
	}

	// variáveis de ambiente vencem o arquivo
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Migrations.Path == "" {
		cfg.Migrations.Path = "migrations"
	}
	if cfg.Files.RootDir == "" {
		cfg.Files.RootDir = "./files"
	}
	if cfg.Meta.Mensal <= 0 {
		cfg.Meta.Mensal = 50000
	}
	cfg.Pricing.applyDefaults()
	return &cfg
}

func (p *PricingConfig) applyDefaults() {
	if p.Conexao <= 0 {
		p.Conexao = 25
	}
	if p.Usuario <= 0 {
		p.Usuario = 25
	}
	if p.Plataforma <= 0 {
		p.Plataforma = 100
	}
	if p.UraCanal <= 0 {
		p.UraCanal = 250
	}
	if p.IaCanal <= 0 {
		p.IaCanal = 90
	}
	if p.ApiOficial <= 0 {
		p.ApiOficial = 50
	}
}
