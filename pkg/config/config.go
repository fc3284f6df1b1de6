package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	HTTP    HTTPConfig
	Session SessionConfig
	API     APIConfig
	OAuth   OAuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DatabaseURL si está definido, si
// no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string con URL encoding para caracteres
// especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig configuración del almacén de sesiones (Redis).
type SessionConfig struct {
	RedisURL   string
	CookieName string
	TTLMinutes int
}

// APIConfig clave de API que deben presentar los clientes en X-API-Key.
type APIConfig struct {
	Key string
}

// OAuthProviderConfig credenciales de un proveedor OAuth.
type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
}

// OAuthConfig configuración de los proveedores OAuth y del state firmado.
type OAuthConfig struct {
	// BaseURL URL pública de la app; los callbacks se construyen como
	// BaseURL + /auth/<provider>/callback.
	BaseURL         string
	StateSecret     string
	StateExpMinutes int
	Google          OAuthProviderConfig
	Facebook        OAuthProviderConfig
}

// CallbackURL devuelve la URL de callback para un proveedor.
func (c OAuthConfig) CallbackURL(provider string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/auth/" + provider + "/callback"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env / config.env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tienda-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "tienda"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			RedisURL:   getString(v, "REDIS_URL", "redis://localhost:6379/0"),
			CookieName: getString(v, "SESSION_COOKIE", "tienda.sid"),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 1440),
		},
		API: APIConfig{
			Key: getString(v, "API_KEY", ""),
		},
		OAuth: OAuthConfig{
			BaseURL:         getString(v, "OAUTH_BASE_URL", "http://localhost:8080"),
			StateSecret:     getString(v, "OAUTH_STATE_SECRET", ""),
			StateExpMinutes: getInt(v, "OAUTH_STATE_EXP_MINUTES", 10),
			Google: OAuthProviderConfig{
				ClientID:     getString(v, "GOOGLE_CLIENT_ID", ""),
				ClientSecret: getString(v, "GOOGLE_CLIENT_SECRET", ""),
			},
			Facebook: OAuthProviderConfig{
				ClientID:     getString(v, "FACEBOOK_CLIENT_ID", ""),
				ClientSecret: getString(v, "FACEBOOK_CLIENT_SECRET", ""),
			},
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
