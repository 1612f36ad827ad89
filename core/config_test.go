package core

import (
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func setEnv(t *testing.T, key, value string) {
	orig, ok := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("os.Setenv(%s) failed: %v", key, err)
	}
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, orig)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func TestNewConfig_Defaults(t *testing.T) {
	setEnv(t, "ENV", "")

	conf := newConfig(viper.New())
	if conf.Env != "DEV" {
		t.Errorf("Env = %s, want DEV", conf.Env)
	}
	if !conf.Debug || conf.TestMode {
		t.Errorf("Debug = %v, TestMode = %v, want true, false", conf.Debug, conf.TestMode)
	}
	if conf.Storage.DataFile != "student_results.json" {
		t.Errorf("Storage.DataFile = %s, want student_results.json", conf.Storage.DataFile)
	}
	if conf.Server.Address != ":8080" {
		t.Errorf("Server.Address = %s, want :8080", conf.Server.Address)
	}
	if conf.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", conf.Server.ShutdownTimeout)
	}
}

func TestNewConfig_Env(t *testing.T) {
	setEnv(t, "ENV", "test")
	setEnv(t, "TEST_STORAGE_DATAFILE", "/tmp/results.yaml")
	setEnv(t, "TEST_DEBUG", "false")
	setEnv(t, "TEST_SERVER_SHUTDOWNTIMEOUT", "3s")

	conf := newConfig(viper.New())
	if conf.Env != "TEST" || !conf.TestMode {
		t.Errorf("Env = %s, TestMode = %v, want TEST, true", conf.Env, conf.TestMode)
	}
	if conf.Debug {
		t.Error("Debug = true, want false")
	}
	if conf.Storage.DataFile != "/tmp/results.yaml" {
		t.Errorf("Storage.DataFile = %s, want /tmp/results.yaml", conf.Storage.DataFile)
	}
	if conf.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 3s", conf.Server.ShutdownTimeout)
	}
}

func TestCleanString(t *testing.T) {
	tests := []struct {
		in    string
		lower bool
		want  string
	}{
		{in: "  Asha ", want: "Asha"},
		{in: "\tAsha\n", lower: true, want: "asha"},
		{in: "   ", want: ""},
	}
	for _, tt := range tests {
		if got := CleanString(tt.in, tt.lower); got != tt.want {
			t.Errorf("CleanString(%q, %v) = %q, want %q", tt.in, tt.lower, got, tt.want)
		}
	}
}

func TestParseOrderings(t *testing.T) {
	got := ParseOrderings(" name, -percentage,,- ")
	want := []Ordering{{Field: "name", Ascending: true}, {Field: "percentage"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseOrderings() = %v, want %v", got, want)
	}
	if got := ParseOrderings(""); len(got) != 0 {
		t.Errorf("ParseOrderings(\"\") = %v, want empty", got)
	}
}
