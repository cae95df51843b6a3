package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		flags []string
		want  []string
	}{
		{
			name:  "global flags before subcommand",
			args:  []string{"-a", "http://h:1", "-token=abc", "list", "-severity", "High"},
			flags: []string{"-a", "-token"},
			want:  []string{"list", "-severity", "High"},
		},
		{
			name:  "nothing to strip",
			args:  []string{"get", "id-1"},
			flags: []string{"-a"},
			want:  []string{"get", "id-1"},
		},
		{
			name:  "flag without value",
			args:  []string{"delete", "-a"},
			flags: []string{"-a"},
			want:  []string{"delete"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripArgs(tt.args, tt.flags))
		})
	}
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "-y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-s"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
		{
			name:         "next flag is not taken as value",
			args:         []string{"-d", "-s", "secret"},
			allowedFlags: []string{"-d", "-s"},
			want:         []string{"-d", "-s", "secret"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-t", "10", "-t", "20"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t", "10", "-t", "20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"testbin", "-c", "/etc/invtrack.json"}, "/etc/invtrack.json"},
		{[]string{"testbin", "-config", "/etc/long.json"}, "/etc/long.json"},
		{[]string{"testbin", "-a", ":3000", "-s", "secret"}, ""},
		{[]string{"testbin", "-c", "/1.json", "-config", "/2.json"}, "/2.json"},
	}

	for _, c := range cases {
		os.Args = c.args
		assert.Equal(t, c.want, ConfigFileFlag(), "args %v", c.args)
	}
}
