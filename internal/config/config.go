package config

import (
	"net"
	"os"
	"strings"
)

type Config struct {
	Addr        string
	SiteBaseURL string
	DataDir     string
	TemplateDir string
	StaticDir   string
}

func Load() *Config {
	addr := getEnv("ADDR", ":8080")
	siteBaseURL := strings.TrimRight(getEnv("SITE_BASE_URL", ""), "/")
	if siteBaseURL == "" {
		siteBaseURL = baseURLFromAddr(addr)
	}

	return &Config{
		Addr:        addr,
		SiteBaseURL: siteBaseURL,
		DataDir:     getEnv("DATA_DIR", "data"),
		TemplateDir: getEnv("TEMPLATE_DIR", "internal/web/templates"),
		StaticDir:   getEnv("STATIC_DIR", "static"),
	}
}

func baseURLFromAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return strings.TrimRight(addr, "/")
	}

	host := ""
	port := ""
	if strings.HasPrefix(addr, ":") {
		host = "localhost"
		port = strings.TrimPrefix(addr, ":")
	} else {
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			port = p
		} else {
			host = addr
		}
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port != "" {
		return "http://" + host + ":" + port
	}
	return "http://" + host
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
