package configs

import (
	"bytes"
	_ "embed"
	"os"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

//go:embed messages.yml
var defaultMessages []byte

// init loads the bundled messages, then the optional file named by MESSAGES_FILE_PATH on top
func init() {
	if err := msg.Load(bytes.NewReader(defaultMessages)); err != nil {
		log.Error("failed to load bundled messages: " + err.Error())
	}

	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		if err := msg.Init(path); err != nil {
			log.Warnw("ignoring messages file", "path", path, "error", err)
		}
	}
}
