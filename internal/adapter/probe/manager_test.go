//go:build unit

package probe

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"golang-netswitch/internal/mock"
	"golang-netswitch/internal/types"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testSettings() types.Settings {
	return types.Settings{
		Interface:      "enp0s3",
		Target:         types.Target{Scheme: "http", Domain: "www.mysite.local", Port: 8080},
		ConnectTimeout: 5 * time.Second,
	}
}

func TestManager_URL(t *testing.T) {
	tests := []struct {
		name   string
		target types.Target
		want   string
	}{
		{name: "Default", target: types.Target{Scheme: "http", Domain: "www.mysite.local", Port: 8080}, want: "http://www.mysite.local:8080"},
		{name: "EmptyScheme", target: types.Target{Domain: "lab.local", Port: 80}, want: "http://lab.local:80"},
		{name: "HTTPS", target: types.Target{Scheme: "https", Domain: "lab.local", Port: 8443}, want: "https://lab.local:8443"},
		{name: "IPv6Literal", target: types.Target{Scheme: "http", Domain: "fd00::1", Port: 8080}, want: "http://[fd00::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			settings.Target = tt.target
			assert.Equal(t, tt.want, NewManager(settings, nil, nil).URL())
		})
	}
}

func TestManager_Access(t *testing.T) {
	ctx := context.Background()
	separator := strings.Repeat("-", 40)

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prober := mock.NewMockProber(ctrl)
		prober.EXPECT().Probe(ctx, "http://www.mysite.local:8080", 5*time.Second).Return(nil)

		var out bytes.Buffer
		err := NewManager(testSettings(), prober, &out).Access(ctx)

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "Trying to access: http://www.mysite.local:8080")
		assert.Equal(t, 2, strings.Count(out.String(), separator))
	})

	t.Run("FailureStillClosesBanner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prober := mock.NewMockProber(ctrl)
		prober.EXPECT().Probe(ctx, gomock.Any(), gomock.Any()).Return(&types.CommandError{Command: "curl", ExitCode: 7})

		var out bytes.Buffer
		err := NewManager(testSettings(), prober, &out).Access(ctx)

		var cmdErr *types.CommandError
		assert.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, 2, strings.Count(out.String(), separator))
	})
}
