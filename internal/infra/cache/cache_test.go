package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"predial-server/internal/infra/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cache", func() {
	var (
		cacheInstance cache.Cache
		ctx           context.Context
	)

	BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Context("GetSet", func() {
		When("setting and getting a value", func() {
			It("should store and retrieve the value correctly", func() {
				success := cacheInstance.Set(ctx, "dashboard:kpis:cond-1", "payload", 0)
				Expect(success).To(BeTrue())

				// Ristretto applies writes asynchronously
				time.Sleep(10 * time.Millisecond)

				retrieved, found := cacheInstance.Get(ctx, "dashboard:kpis:cond-1")
				Expect(found).To(BeTrue())
				Expect(retrieved).To(Equal("payload"))
			})
		})
	})

	Context("GetSetWithTTL", func() {
		When("setting a value with TTL", func() {
			It("should expire the value after TTL", func() {
				ttl := 100 * time.Millisecond
				success := cacheInstance.Set(ctx, "dashboard:kpis:cond-2", "payload", ttl)
				Expect(success).To(BeTrue())

				time.Sleep(10 * time.Millisecond)

				_, found := cacheInstance.Get(ctx, "dashboard:kpis:cond-2")
				Expect(found).To(BeTrue())

				time.Sleep(ttl + 50*time.Millisecond)

				retrieved, found := cacheInstance.Get(ctx, "dashboard:kpis:cond-2")
				Expect(found).To(BeFalse())
				Expect(retrieved).To(BeNil())
			})
		})
	})

	Context("Delete", func() {
		When("deleting a value", func() {
			It("should remove the value from cache", func() {
				cacheInstance.Set(ctx, "dashboard:kpis:cond-3", "payload", 0)
				time.Sleep(10 * time.Millisecond)

				_, found := cacheInstance.Get(ctx, "dashboard:kpis:cond-3")
				Expect(found).To(BeTrue())

				cacheInstance.Delete(ctx, "dashboard:kpis:cond-3")
				time.Sleep(10 * time.Millisecond)

				retrieved, found := cacheInstance.Get(ctx, "dashboard:kpis:cond-3")
				Expect(found).To(BeFalse())
				Expect(retrieved).To(BeNil())
			})
		})
	})

	Context("GetOrSet", func() {
		When("the value is absent", func() {
			It("should invoke the loader and cache the result", func() {
				var calls atomic.Int32
				loader := func() (any, error) {
					calls.Add(1)
					return "computed", nil
				}

				value, err := cacheInstance.GetOrSet(ctx, "dashboard:kpis:cond-4", time.Minute, loader)
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal("computed"))
				Expect(calls.Load()).To(Equal(int32(1)))

				time.Sleep(10 * time.Millisecond)

				value, err = cacheInstance.GetOrSet(ctx, "dashboard:kpis:cond-4", time.Minute, loader)
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal("computed"))
				Expect(calls.Load()).To(Equal(int32(1)))
			})
		})

		When("the loader fails", func() {
			It("should propagate the error and cache nothing", func() {
				loader := func() (any, error) {
					return nil, errors.New("database unavailable")
				}

				_, err := cacheInstance.GetOrSet(ctx, "dashboard:kpis:cond-5", time.Minute, loader)
				Expect(err).To(MatchError("database unavailable"))

				_, found := cacheInstance.Get(ctx, "dashboard:kpis:cond-5")
				Expect(found).To(BeFalse())
			})
		})

		When("many goroutines load the same key", func() {
			It("should collapse concurrent loads into one", func() {
				var calls atomic.Int32
				loader := func() (any, error) {
					calls.Add(1)
					time.Sleep(50 * time.Millisecond)
					return "computed", nil
				}

				var wg sync.WaitGroup
				for range 10 {
					wg.Add(1)
					go func() {
						defer wg.Done()
						value, err := cacheInstance.GetOrSet(ctx, "dashboard:kpis:cond-6", time.Minute, loader)
						Expect(err).NotTo(HaveOccurred())
						Expect(value).To(Equal("computed"))
					}()
				}
				wg.Wait()

				Expect(calls.Load()).To(Equal(int32(1)))
			})
		})
	})

	Context("DefaultConfig", func() {
		It("should provide sane defaults", func() {
			config := cache.DefaultConfig()
			Expect(config.MaxCost).To(BeNumerically(">", int64(0)))
			Expect(config.NumCounters).To(BeNumerically(">", int64(0)))
			Expect(config.BufferItems).To(BeNumerically(">", int64(0)))
		})
	})
})
