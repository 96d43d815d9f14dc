// Package ebus fans float64 values out to subscribers by topic. The last
// value of every topic is cached so late subscribers start with it.
package ebus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	TopicSpeed    = "speed"
	TopicSpeedMPH = "speed.mph"
)

var ErrChannelFull = errors.New("publish channel full")

type Message struct {
	Topic string
	Data  float64
}

type Bus struct {
	subs      map[string][]chan float64
	subsMutex sync.Mutex

	subsAll      []chan *Message
	subsAllMutex sync.Mutex

	inChan       chan *Message
	unsubChan    chan chan float64
	unsubAllChan chan chan *Message
	cache        *ttlcache.Cache[string, float64]

	aggregators     []*EventAggregator
	aggregatorsLock sync.Mutex
}

var (
	defaultOnce sync.Once
	defaultBus  *Bus
)

// Default returns the process wide bus.
func Default() *Bus {
	defaultOnce.Do(func() {
		defaultBus = New()
	})
	return defaultBus
}

func New() *Bus {
	b := &Bus{
		subs:         make(map[string][]chan float64),
		inChan:       make(chan *Message, 100),
		unsubChan:    make(chan chan float64, 100),
		unsubAllChan: make(chan chan *Message, 100),
		cache: ttlcache.New[string, float64](
			ttlcache.WithTTL[string, float64](1 * time.Minute),
		),
	}
	go b.run()
	return b
}

func (b *Bus) run() {
	for {
		select {
		case msg := <-b.inChan:
			if v := b.cache.Get(msg.Topic); v != nil && v.Value() == msg.Data {
				continue
			}
			b.cache.Set(msg.Topic, msg.Data, ttlcache.DefaultTTL)
			b.subsAllMutex.Lock()
			for _, sub := range b.subsAll {
				select {
				case sub <- msg:
				default:
				}
			}
			b.subsAllMutex.Unlock()
			b.subsMutex.Lock()
			for _, sub := range b.subs[msg.Topic] {
				select {
				case sub <- msg.Data:
				default:
				}
			}
			b.subsMutex.Unlock()
			b.aggregatorsLock.Lock()
			aggs := b.aggregators
			b.aggregatorsLock.Unlock()
			for _, agg := range aggs {
				agg.fun(b, msg.Topic, msg.Data)
			}
		case unsub := <-b.unsubAllChan:
			b.subsAllMutex.Lock()
			for i, sub := range b.subsAll {
				if sub == unsub {
					b.subsAll = append(b.subsAll[:i], b.subsAll[i+1:]...)
					close(sub)
					break
				}
			}
			b.subsAllMutex.Unlock()
		case unsub := <-b.unsubChan:
			b.subsMutex.Lock()
		outer:
			for topic, subz := range b.subs {
				for i, sub := range subz {
					if sub == unsub {
						log.Println("Unsubscribe", topic)
						b.subs[topic] = append(subz[:i], subz[i+1:]...)
						close(unsub)
						if len(b.subs[topic]) == 0 {
							delete(b.subs, topic)
						}
						break outer
					}
				}
			}
			b.subsMutex.Unlock()
		}
	}
}

// Publish queues data for topic. Repeating the cached value is a no-op.
func (b *Bus) Publish(topic string, data float64) error {
	select {
	case b.inChan <- &Message{Topic: topic, Data: data}:
		return nil
	default:
		return ErrChannelFull
	}
}

// Last returns the cached value of topic.
func (b *Bus) Last(topic string) (float64, bool) {
	if itm := b.cache.Get(topic); itm != nil {
		return itm.Value(), true
	}
	return 0, false
}

func (b *Bus) SubscribeAll() chan *Message {
	respChan := make(chan *Message, 100)
	b.subsAllMutex.Lock()
	b.subsAll = append(b.subsAll, respChan)
	b.subsAllMutex.Unlock()

	b.cache.Range(func(item *ttlcache.Item[string, float64]) bool {
		select {
		case respChan <- &Message{Topic: item.Key(), Data: item.Value()}:
			return true
		default:
			return false
		}
	})
	return respChan
}

func (b *Bus) SubscribeAllFunc(f func(topic string, value float64)) func() {
	respChan := b.SubscribeAll()
	go func() {
		for v := range respChan {
			f(v.Topic, v.Data)
		}
	}()
	return func() {
		b.UnsubscribeAll(respChan)
	}
}

func (b *Bus) UnsubscribeAll(channel chan *Message) {
	b.unsubAllChan <- channel
}

// SubscribeFunc calls f with every value published to topic, from a
// separate goroutine. The returned function unsubscribes.
func (b *Bus) SubscribeFunc(topic string, f func(float64)) func() {
	respChan := b.Subscribe(topic)
	go func() {
		for v := range respChan {
			f(v)
		}
	}()
	return func() {
		b.Unsubscribe(respChan)
	}
}

func (b *Bus) Subscribe(topic string) chan float64 {
	log.Println("Subscribe", topic)
	respChan := make(chan float64, 100)
	b.subsMutex.Lock()
	b.subs[topic] = append(b.subs[topic], respChan)
	b.subsMutex.Unlock()
	if v, ok := b.Last(topic); ok {
		respChan <- v
	}
	return respChan
}

func (b *Bus) Unsubscribe(channel chan float64) {
	b.unsubChan <- channel
}

func Publish(topic string, data float64) error { return Default().Publish(topic, data) }

func Subscribe(topic string) chan float64 { return Default().Subscribe(topic) }

func SubscribeFunc(topic string, f func(float64)) func() { return Default().SubscribeFunc(topic, f) }

func Unsubscribe(channel chan float64) { Default().Unsubscribe(channel) }
