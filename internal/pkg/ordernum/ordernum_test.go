//go:build unit

package ordernum_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storefront-api/internal/pkg/ordernum"
)

func TestGeneratorNext(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		g := ordernum.NewGenerator()
		now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

		assert.Equal(t, "ORD-20240115-000001", g.Next(now))
		assert.Equal(t, "ORD-20240115-000002", g.Next(now))
	})

	t.Run("date rendered in UTC", func(t *testing.T) {
		g := ordernum.NewGenerator()
		jst := time.FixedZone("JST", 9*60*60)
		// 01:00 JST is still the previous day in UTC
		now := time.Date(2024, 1, 16, 1, 0, 0, 0, jst)

		assert.Equal(t, "ORD-20240115-000001", g.Next(now))
	})

	t.Run("unique under concurrent checkouts", func(t *testing.T) {
		g := ordernum.NewGenerator()
		now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

		const n = 100
		ids := make(chan string, n)
		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() {
				defer wg.Done()
				ids <- g.Next(now)
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[string]struct{}, n)
		for id := range ids {
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, n)
	})
}
