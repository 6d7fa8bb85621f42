package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogErrorSerializesDataPayload(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	LogError(logger, "logrus_test.go", "TestLogErrorSerializesDataPayload", "Dispatch",
		map[string]string{"id": "PUR-001"}, errors.New("boom"))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	data, ok := line["data"].(string)
	if !ok {
		t.Fatalf("data field is %T, want a serialized string", line["data"])
	}
	if data != `{"id":"PUR-001"}` {
		t.Fatalf("data = %q", data)
	}
	if line["msg"] != "boom" {
		t.Fatalf("msg = %q, want boom", line["msg"])
	}
}

func TestLogErrorWithoutData(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	LogError(logger, "logrus_test.go", "TestLogErrorWithoutData", "Dispatch", nil, errors.New("boom"))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if _, present := line["data"]; present {
		t.Fatalf("data field present for nil payload")
	}
}
