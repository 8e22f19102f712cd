package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// LoadEnv nạp file .env nếu có, thiếu file chỉ cảnh báo
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// setFromEnv gán giá trị env vào dst nếu biến có giá trị
func setFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

type DatabaseConfig struct {
	Host        string `default:"localhost"`
	Port        string `default:"5432"`
	User        string `default:"postgres"`
	Password    string
	Name        string
	SSLMode     string `default:"disable"`
	TimeZone    string `default:"Asia/Ho_Chi_Minh"`
	AutoMigrate string `default:"true"`
}

// DSN chuỗi kết nối postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone)
}

func (d DatabaseConfig) ShouldMigrate() bool {
	ok, err := strconv.ParseBool(d.AutoMigrate)
	return err == nil && ok
}

type RedisConfig struct {
	Addr     string
	User     string
	Password string
}

// BookingConfig cấu hình của booking-service
type BookingConfig struct {
	Env           string `default:"dev"`
	Port          string `default:"8083"`
	GRPCPort      string `default:"50052"`
	DB            DatabaseConfig
	Redis         RedisConfig
	CloudinaryURL string
	UploadFolder  string `default:"uploads-booking"`
	HoldSweepSpec string `default:"@every 5m"`
	LogLevel      string `default:"info"`
}

func (c BookingConfig) IsProd() bool {
	return c.Env == "prod"
}

func LoadBookingConfig() (BookingConfig, error) {
	var cfg BookingConfig
	setFromEnv(&cfg.Env, "ENV")
	setFromEnv(&cfg.Port, "PORT")
	setFromEnv(&cfg.GRPCPort, "GRPC_PORT")
	setFromEnv(&cfg.DB.Host, "DB_HOST")
	setFromEnv(&cfg.DB.Port, "DB_PORT")
	setFromEnv(&cfg.DB.User, "DB_USER")
	setFromEnv(&cfg.DB.Password, "DB_PASSWORD")
	setFromEnv(&cfg.DB.Name, "DB_NAME")
	setFromEnv(&cfg.DB.SSLMode, "DB_SSLMODE")
	setFromEnv(&cfg.DB.TimeZone, "DB_TIMEZONE")
	setFromEnv(&cfg.DB.AutoMigrate, "DB_AUTO_MIGRATE")
	setFromEnv(&cfg.Redis.Addr, "REDIS_ADDR")
	setFromEnv(&cfg.Redis.User, "REDIS_USER")
	setFromEnv(&cfg.Redis.Password, "REDIS_PASSWORD")
	setFromEnv(&cfg.CloudinaryURL, "CLOUDINARY_URL")
	setFromEnv(&cfg.UploadFolder, "UPLOAD_FOLDER")
	setFromEnv(&cfg.HoldSweepSpec, "HOLD_SWEEP_SPEC")
	setFromEnv(&cfg.LogLevel, "LOG_LEVEL")

	if err := defaults.Set(&cfg); err != nil {
		return cfg, err
	}
	if cfg.DB.Name == "" {
		return cfg, fmt.Errorf("DB_NAME không được để trống")
	}
	return cfg, nil
}

// GatewayConfig cấu hình của api-gateway
type GatewayConfig struct {
	Port               string `default:"3000"`
	AccountServiceAddr string `default:"localhost:50051"`
	BookingServiceAddr string `default:"localhost:50052"`
	PaymentServiceAddr string `default:"localhost:50053"`
	JWTPublicKey       string
	LogLevel           string `default:"info"`
}

func LoadGatewayConfig() (GatewayConfig, error) {
	var cfg GatewayConfig
	setFromEnv(&cfg.Port, "PORT")
	setFromEnv(&cfg.AccountServiceAddr, "ACCOUNT_SERVICE_ADDR")
	setFromEnv(&cfg.BookingServiceAddr, "BOOKING_SERVICE_ADDR")
	setFromEnv(&cfg.PaymentServiceAddr, "PAYMENT_SERVICE_ADDR")
	setFromEnv(&cfg.JWTPublicKey, "JWT_PUBLIC_KEY")
	setFromEnv(&cfg.LogLevel, "LOG_LEVEL")

	if err := defaults.Set(&cfg); err != nil {
		return cfg, err
	}
	if cfg.JWTPublicKey == "" {
		return cfg, fmt.Errorf("JWT_PUBLIC_KEY không được để trống")
	}
	return cfg, nil
}
