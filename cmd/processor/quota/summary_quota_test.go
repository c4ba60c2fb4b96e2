package quota_test

import (
	"context"
	"testing"

	"clip-cast/cmd/processor/quota"
	"clip-cast/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limiterWith(perMinute, perDay int) *quota.SummaryQuotaLimiter {
	return quota.NewSummaryQuotaLimiterFromConfig(config.AppConfig{
		Processor: config.ProcessorConfig{
			SummaryQuota: config.SummaryQuotaConfig{
				RequestsPerMinute: perMinute,
				RequestsPerDay:    perDay,
			},
		},
	})
}

func TestWaitAndReserveDailyLimit(t *testing.T) {
	l := limiterWith(0, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := l.WaitAndReserve(ctx)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	// 한도 소진 후에는 에러 없이 false 를 반환해야 한다
	allowed, err := l.WaitAndReserve(ctx)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestWaitAndReserveNoLimits(t *testing.T) {
	l := limiterWith(0, 0)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		allowed, err := l.WaitAndReserve(ctx)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestWaitAndReserveContextCanceled(t *testing.T) {
	// 분당 1회 제한이면 두 번째 호출은 약 1분을 대기해야 하므로
	// 취소된 컨텍스트로 즉시 빠져나오는지 확인한다
	l := limiterWith(1, 0)

	allowed, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	require.True(t, allowed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	allowed, err = l.WaitAndReserve(ctx)
	assert.False(t, allowed)
	assert.ErrorIs(t, err, context.Canceled)
}
