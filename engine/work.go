package main

import (
	"errors"
	"strconv"

	"github.com/HuXin0817/painting/pkg/assess"
	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var errStale = errors.New("stale hint")

// Assess scores one hint message against the painting's current step. Hints
// for a step the painting has already left are stale.
func Assess(m message.HintMessage, currentStep int, exists bool) (AssessMessage, error) {
	if !exists || currentStep != m.Step {
		return AssessMessage{}, errStale
	}

	gain, err := assess.Gain(m.State, m.Kind, m.Point)
	if err != nil {
		return AssessMessage{}, err
	}

	return AssessMessage{
		AssessMessageKey: m.AssessMessageKey(),
		AssessMessageValue: message.AssessMessageValue{
			Point: m.Point,
			Gain:  gain,
		},
	}, nil
}

func currentStep(uid message.PaintingUid) (step int, exists bool, err error) {
	str, err := RedisClient.Get(uid.StateKey())
	if err != nil || str == "" {
		return 0, false, err
	}

	m, err := message.NewStateMessage(str)
	if err != nil {
		return 0, false, err
	}

	return m.Step(), true, nil
}

func OnceIntervalWorking(NowTopic message.RedisPartition, Pusher *pusher.Pusher[AssessMessage]) (err error) {
	logx.Infof("Start Working At Partition: %d", NowTopic)

	defer func() {
		if _, delErr := RedisClient.Del(NowTopic.OwnerKey()); delErr != nil {
			logx.Errorf("release partition %d: %v", NowTopic, delErr)
		}
	}()

	for {
		if err = RedisClient.Expire(NowTopic.OwnerKey(), c.OnceWorkingTime); err != nil {
			return err
		}

		l, err := RedisClient.Llen(NowTopic.ListKey())
		if err != nil {
			return err
		}

		if l == 0 {
			return nil
		}

		m, err := RedisClient.Rpop(NowTopic.ListKey())
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}

		mess, err := message.NewHintMessage(m)
		if err != nil {
			logx.Errorf("drop undecodable hint: %v", err)
			continue
		}

		assessedKey := mess.HasBeenAssessedKey().String()
		assessed, err := RedisClient.Get(assessedKey)
		if err != nil {
			return err
		}

		if assessed != "" {
			continue
		}

		step, exists, err := currentStep(mess.PaintingUid)
		if err != nil {
			if _, pushErr := RedisClient.Lpush(NowTopic.ListKey(), m); pushErr != nil {
				logx.Errorf("roll back hint: %v", pushErr)
			}
			return err
		}

		assessMessage, err := Assess(mess, step, exists)
		if errors.Is(err, errStale) {
			continue
		}
		if err != nil {
			logx.Infof("skip hint %s on painting %s: %v", mess.Point, mess.PaintingUid, err)
			continue
		}

		Pusher.AddMessages(assessMessage)

		if err = RedisClient.Setex(assessedKey, strconv.Itoa(assessMessage.Gain), c.SetExpireTime); err != nil {
			return err
		}
	}
}
