//go:build integration
// +build integration

package test

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const (
	// Interface and profile reported by the stub nmcli. The loopback link is used
	// because the interface must exist before the profile is resolved.
	testInterface = "lo"
	testProfile   = "Wired connection 1"

	// Address reported by the stub ip
	liveAddress = "192.168.56.40/24"
)

const nmcliStub = `#!/bin/sh
echo "nmcli $*" >> "$NETSWITCH_CALLS"
case "$*" in
"-t -f NAME,DEVICE connection show --active")
	[ -n "$NMCLI_NO_PROFILE" ] && exit 0
	printf 'docker0:docker0\nWired connection 1:lo\n'
	;;
"connection down"*)
	if [ -n "$NMCLI_FAIL_DOWN" ]; then
		echo "Error: Connection deactivation failed" >&2
		exit 4
	fi
	;;
esac
exit 0
`

const ipStub = `#!/bin/sh
echo "ip $*" >> "$NETSWITCH_CALLS"
echo '[{"ifname":"lo","addr_info":[{"family":"inet","local":"192.168.56.40","prefixlen":24}]}]'
`

const curlStub = `#!/bin/sh
echo "curl $*" >> "$NETSWITCH_CALLS"
echo "* Connected to www.mysite.local"
`

const configYAML = `interface: lo
dns_server: 192.168.56.10
allowed_subnet: 192.168.56.0/24
settle_delay: 10ms
require_root: false
clear_screen: false
logging:
  level: error
`

type harness struct {
	binary string
	dir    string
	calls  string
	config string
}

// newHarness builds the binary and installs stub collaborators in a temporary PATH directory.
func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()

	h := &harness{
		binary: filepath.Join(dir, "netswitch"),
		dir:    dir,
		calls:  filepath.Join(dir, "calls.log"),
		config: filepath.Join(dir, "netswitch.yaml"),
	}

	build := exec.Command("go", "build", "-o", h.binary, ".")
	build.Dir = filepath.Join("..") // project root
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, out)
	}

	for name, script := range map[string]string{"nmcli": nmcliStub, "ip": ipStub, "curl": curlStub} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
			t.Fatalf("Failed to write %s stub: %v", name, err)
		}
	}
	if err := os.WriteFile(h.config, []byte(configYAML), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	return h
}

// run executes the binary with the stubs first in PATH and returns stdout and the recorded calls.
func (h *harness) run(t *testing.T, stdin string, env []string, args ...string) (string, []string, error) {
	t.Helper()
	_ = os.Remove(h.calls)

	cmd := exec.Command(h.binary, append([]string{"-f", h.config}, args...)...)
	cmd.Env = append(os.Environ(),
		"PATH="+h.dir+string(os.PathListSeparator)+os.Getenv("PATH"),
		"NETSWITCH_CALLS="+h.calls,
	)
	cmd.Env = append(cmd.Env, env...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stdout
	err := cmd.Run()

	data, _ := os.ReadFile(h.calls)
	var calls []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line != "" {
			calls = append(calls, line)
		}
	}
	return stdout.String(), calls, err
}

func TestNetswitchIntegration(t *testing.T) {
	h := newHarness(t)

	t.Run("Static_IP_Configuration", func(t *testing.T) {
		out, calls, err := h.run(t, "", nil, "static", "192.168.56.40")
		if err != nil {
			t.Fatalf("static failed: %v\n%s", err, out)
		}

		expected := []string{
			"nmcli -t -f NAME,DEVICE connection show --active",
			fmt.Sprintf("nmcli connection modify %s ipv4.method manual ipv4.addresses 192.168.56.40/24 ipv4.gateway 192.168.56.1 ipv4.dns 192.168.56.10", testProfile),
			fmt.Sprintf("nmcli connection down %s", testProfile),
			fmt.Sprintf("nmcli connection up %s", testProfile),
			fmt.Sprintf("ip -4 -j addr show dev %s", testInterface),
		}
		assertCalls(t, expected, calls)

		if !strings.Contains(out, "Assigned IP address: "+liveAddress) {
			t.Errorf("Expected live address in output, got:\n%s", out)
		}
	})

	t.Run("Static_IP_Rejected", func(t *testing.T) {
		for _, candidate := range []string{"192.168.56.0", "192.168.56.255", "192.168.56.10", "10.0.0.5", "not-an-ip"} {
			out, calls, err := h.run(t, "", nil, "static", candidate)
			if err == nil {
				t.Errorf("Expected %s to be rejected, output:\n%s", candidate, out)
			}
			for _, call := range calls {
				if strings.Contains(call, "modify") {
					t.Errorf("Profile modified for rejected address %s: %s", candidate, call)
				}
			}
		}
	})

	t.Run("DHCP_Switch", func(t *testing.T) {
		out, calls, err := h.run(t, "", nil, "dhcp")
		if err != nil {
			t.Fatalf("dhcp failed: %v\n%s", err, out)
		}

		modify := fmt.Sprintf("nmcli connection modify %s ipv4.addresses  ipv4.gateway  ipv4.dns  ipv4.method auto", testProfile)
		if len(calls) < 2 || calls[1] != modify {
			t.Errorf("Expected DHCP modify call %q, got %v", modify, calls)
		}
	})

	t.Run("Failed_Down_Never_Runs_Up", func(t *testing.T) {
		out, calls, err := h.run(t, "", []string{"NMCLI_FAIL_DOWN=1"}, "dhcp")
		if err == nil {
			t.Fatalf("Expected dhcp to fail when down fails, output:\n%s", out)
		}
		for _, call := range calls {
			if strings.HasPrefix(call, "nmcli connection up") {
				t.Errorf("Up ran after a failed down: %v", calls)
			}
		}
		if !strings.Contains(out, "Failed to reactivate the network.") {
			t.Errorf("Expected reactivation failure message, got:\n%s", out)
		}
	})

	t.Run("Missing_Profile_Exits_Nonzero", func(t *testing.T) {
		out, _, err := h.run(t, "", []string{"NMCLI_NO_PROFILE=1"}, "menu")
		if err == nil {
			t.Fatalf("Expected menu to exit non-zero without a profile, output:\n%s", out)
		}
		if !strings.Contains(out, "Could not find an active connection for 'lo'.") {
			t.Errorf("Expected resolution failure message, got:\n%s", out)
		}
	})

	t.Run("Menu_Session", func(t *testing.T) {
		out, calls, err := h.run(t, "4\n\n3\n\n7\n\n5\n", nil, "menu")
		if err != nil {
			t.Fatalf("menu failed: %v\n%s", err, out)
		}

		for _, want := range []string{
			"Connection found: 'Wired connection 1'",
			"Assigned IP address: " + liveAddress,
			"Trying to access: http://www.mysite.local:8080",
			"Invalid choice, please try again.",
			"Goodbye!",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("Expected %q in menu output:\n%s", want, out)
			}
		}
		assertContainsCall(t, calls, "curl -v --connect-timeout 5 http://www.mysite.local:8080")
	})
}

func assertCalls(t *testing.T, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("Expected %d calls, got %d:\n%s", len(expected), len(actual), strings.Join(actual, "\n"))
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Call %d: expected %q, got %q", i, expected[i], actual[i])
		}
	}
}

func assertContainsCall(t *testing.T, calls []string, want string) {
	t.Helper()
	for _, call := range calls {
		if call == want {
			return
		}
	}
	t.Errorf("Expected call %q, got %v", want, calls)
}
