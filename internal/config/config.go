package config

import "os"

type Config struct {
	Addr      string
	UploadDir string
}

func Load() Config {
	addr := os.Getenv("GROCERY_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	return Config{
		Addr:      addr,
		UploadDir: uploadDir,
	}
}
