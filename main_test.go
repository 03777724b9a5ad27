package main

import "testing"

func TestEnvDir(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "."},
		{[]string{"-text", "hi"}, "."},
		{[]string{"-env", "/etc/ledtext"}, "/etc/ledtext"},
		{[]string{"-headless", "--env=conf"}, "conf"},
		{[]string{"-env"}, "."},
	}
	for _, tt := range tests {
		if got := envDir(tt.args); got != tt.want {
			t.Errorf("envDir(%q): expected %q, got %q", tt.args, tt.want, got)
		}
	}
}
