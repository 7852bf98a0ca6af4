//go:build unit

package curl

import (
	"context"
	"testing"
	"time"

	"golang-netswitch/internal/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProberAdapter_Probe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mock.NewMockCommandExecutor(ctrl)
	prober := NewProberAdapter(exec)
	ctx := context.Background()

	t.Run("WholeSeconds", func(t *testing.T) {
		exec.EXPECT().
			Run(ctx, "curl", "-v", "--connect-timeout", "5", "http://www.mysite.local:8080").
			Return(nil)

		assert.NoError(t, prober.Probe(ctx, "http://www.mysite.local:8080", 5*time.Second))
	})

	t.Run("FractionalSeconds", func(t *testing.T) {
		exec.EXPECT().
			Run(ctx, "curl", "-v", "--connect-timeout", "2.5", "http://10.0.0.1:80").
			Return(assert.AnError)

		err := prober.Probe(ctx, "http://10.0.0.1:80", 2500*time.Millisecond)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
