package message

import (
	"time"

	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/bytedance/sonic"
)

// HintMessage asks a worker to assess painting Kind at Point.
type HintMessage struct {
	TimeStamp   TimeStamp      `json:"timeStamp"`
	PaintingUid PaintingUid    `json:"paintingUid"`
	Step        int            `json:"step"`
	State       painting.State `json:"state"`
	Kind        painting.Kind  `json:"kind"`
	Point       painting.Point `json:"point"`
}

func NewHintMessages(uid PaintingUid, st painting.State, kind painting.Kind, points ...painting.Point) (messages []HintMessage) {
	ts := NewTimeStamp(time.Now())
	for _, p := range points {
		messages = append(messages, HintMessage{
			TimeStamp:   ts,
			PaintingUid: uid,
			Step:        len(st.Items),
			State:       st,
			Kind:        kind,
			Point:       p,
		})
	}
	return
}

func NewHintMessage(str string) (newHintMessage HintMessage, err error) {
	err = sonic.UnmarshalString(str, &newHintMessage)
	return
}

func (m HintMessage) AssessMessageKey() AssessMessageKey {
	return AssessMessageKey{
		PaintingUid: m.PaintingUid,
		Step:        m.Step,
		Kind:        m.Kind,
	}
}

func (m HintMessage) HasBeenAssessedKey() HintHasBeenAssessedKey {
	return HintHasBeenAssessedKey{
		AssessMessageKey: m.AssessMessageKey(),
		Point:            m.Point,
	}
}

func (m HintMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
