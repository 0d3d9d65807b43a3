package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS    = ""          // e.g. "example.com,example2.com"
	MYSQL_DSN      = ""          // MySQL will be used if this is set
	POSTGRES_DSN   = ""          // Postgres will be used if MYSQL_DSN is not configured and this is set
	SQLITE_FILE    = "yatube.db" // SQLite is the fallback driver
	BIND_ADDRESS   = "0.0.0.0:8080"
	SESSION_KEY    = "please change me in production"
	DEBUG_MODE     = true
	REDIS_ADDR     = "" // Redis backs the front-page cache if this is set
	REDIS_PASSWORD = ""
	MEDIA_DIR      = "media" // Local root for uploaded post images
	TMP_DIR        = "/tmp"  // Local staging dir when media lives in S3
	S3_BUCKET      = ""      // S3 media storage will be used if this is set
	S3_REGION      = "us-east-1"
	S3_ENDPOINT    = ""
	S3_AUTH        = "" // "key:secret"

	POSTS_PER_PAGE      = 10
	INDEX_CACHE_SECONDS = 20
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("POSTGRES_DSN", &POSTGRES_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("REDIS_ADDR", &REDIS_ADDR)
	readEnvString("REDIS_PASSWORD", &REDIS_PASSWORD)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_AUTH", &S3_AUTH)
	readEnvInt("POSTS_PER_PAGE", &POSTS_PER_PAGE)
	readEnvInt("INDEX_CACHE_SECONDS", &INDEX_CACHE_SECONDS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
