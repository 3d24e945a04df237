package time_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

func TestClock_Now(t *testing.T) {
	t.Parallel()
	clock := pkgtime.NewClock()
	pinned := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, pinned, clock.Now(pkgtime.WithNow(context.Background(), pinned)))

	before := time.Now()
	assert.False(t, clock.Now(context.Background()).Before(before))
}

func TestMillis(t *testing.T) {
	t.Parallel()
	value := time.Date(2024, 6, 1, 12, 0, 0, 1_234_567, time.UTC)

	assert.True(t, pkgtime.Millis(value).Equal(time.Date(2024, 6, 1, 12, 0, 0, 1_000_000, time.UTC)))
}
