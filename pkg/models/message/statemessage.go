package message

import (
	"time"

	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/bytedance/sonic"
)

// StateMessage is how a surface is kept between requests.
type StateMessage struct {
	TimeStamp   TimeStamp      `json:"timeStamp"`
	PaintingUid PaintingUid    `json:"paintingUid"`
	State       painting.State `json:"state"`
}

func NewStateMessageFromSurface(uid PaintingUid, s *painting.Surface) StateMessage {
	return StateMessage{
		TimeStamp:   NewTimeStamp(time.Now()),
		PaintingUid: uid,
		State:       s.State(),
	}
}

func NewStateMessage(str string) (newStateMessage StateMessage, err error) {
	err = sonic.UnmarshalString(str, &newStateMessage)
	return
}

func (m StateMessage) Step() int {
	return len(m.State.Items)
}

func (m StateMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
