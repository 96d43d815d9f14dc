package ebus

import "github.com/roffe/speedometer/pkg/common"

type EventAggregatorFunc func(b *Bus, topic string, value float64)

type EventAggregator struct {
	fun EventAggregatorFunc
}

func (b *Bus) RegisterAggregator(aggs ...*EventAggregator) {
	b.aggregatorsLock.Lock()
	defer b.aggregatorsLock.Unlock()
outer:
	for _, agg := range aggs {
		for _, existing := range b.aggregators {
			if existing == agg {
				continue outer
			}
		}
		b.aggregators = append(b.aggregators, agg)
	}
}

// ScaleAggregator republishes every value of in multiplied by factor on out.
func ScaleAggregator(in, out string, factor float64) *EventAggregator {
	return &EventAggregator{
		fun: func(b *Bus, topic string, value float64) {
			if topic != in {
				return
			}
			b.Publish(out, value*factor)
		},
	}
}

// MPHAggregator publishes TopicSpeed converted from km/h on TopicSpeedMPH.
func MPHAggregator() *EventAggregator {
	return ScaleAggregator(TopicSpeed, TopicSpeedMPH, common.KmhToMph)
}
