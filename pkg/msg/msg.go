package msg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var messages = make(map[string]string)

// Init loads messages from a YAML file, merging them over the ones already loaded
func Init(filepath string) error {
	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("fail to read messages: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Load(file)
}

// Load reads YAML messages from r, merging them over the ones already loaded
func Load(r io.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return fmt.Errorf("fail to read messages: %w", err)
	}

	parseMessageMap("", v.AllSettings(), messages)
	return nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns a msg and format
func GetMessage(key string, args ...interface{}) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		msg = strings.ReplaceAll(msg, fmt.Sprintf("{%d}", i), argString(arg))
	}

	return msg
}

// argString renders a placeholder argument; values other than strings, ints and errors are JSON encoded
func argString(arg interface{}) string {
	switch v := arg.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case error:
		return v.Error()
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}
