package async_test

import (
	"context"

	"predial-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	var broker *async.LocalBroker
	var topic async.BrokerTopicName
	var subscription async.Subscription
	var message async.BrokerMessage
	var ctx context.Context

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		ctx = context.TODO()
	})

	Context("Subscribe", func() {
		When("add a new subscriber for a topic", func() {
			BeforeEach(func() {
				topic = "work_order_events"
			})

			It("should deliver published messages", func() {
				subscription, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{})

				Eventually(subscription.Receiver).Should(Receive(&async.BrokerMessage{}))
			})
		})

		When("multiple subscriptors", func() {
			var subscription2 async.Subscription
			BeforeEach(func() {
				topic = "work_order_events"
			})

			It("should fan out to every subscriber", func() {
				subscription, _ = broker.Subscribe(topic)
				subscription2, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{})

				Eventually(subscription.Receiver).Should(Receive(&async.BrokerMessage{}))
				Eventually(subscription2.Receiver).Should(Receive(&async.BrokerMessage{}))
			})
		})

		When("a new message arrives", func() {
			BeforeEach(func() {
				topic = "plan_events"
				subscription, _ = broker.Subscribe(topic)
				message = async.BrokerMessage{
					Event: "work_order_status_changed",
					Value: "OS-2025-0001",
				}
			})

			It("should receive a message from channel", func() {
				broker.Publish(context.TODO(), topic, message)

				Eventually(subscription.Receiver).Should(Receive(And(
					HaveField("Event", "work_order_status_changed"),
					HaveField("Value", "OS-2025-0001"),
				)))
			})
		})

		When("stop broker", func() {
			BeforeEach(func() {
				topic = "plan_events"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should close subscriber channels", func() {
				broker.Stop()

				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})
	})

	Context("Unsubscribe", func() {
		When("subscription exists", func() {
			BeforeEach(func() {
				topic = "work_order_events"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should close the receiver", func() {
				err := broker.Unsubscribe(topic, subscription)

				Expect(err).NotTo(HaveOccurred())
				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})

		When("topic does not exist", func() {
			It("should return an error", func() {
				err := broker.Unsubscribe("missing", async.Subscription{ID: "nope"})

				Expect(err).To(MatchError(async.ErrTopicNotFound))
			})
		})
	})
})
